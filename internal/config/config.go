// Package config loads the relay server configuration.
//
// Configuration comes from one YAML file named by the --config flag or the
// IM_RELAY_CONFIG environment variable. Values in the file are merged over
// Default. ${VAR} and ${VAR:-default} are expanded in secret-bearing fields so
// keys and DSNs can stay out of the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding the config path.
const EnvConfig = "IM_RELAY_CONFIG"

// Duration is a time.Duration written as a Go duration string ("90s", "5m").
type Duration time.Duration

// D returns d as a time.Duration.
func (d Duration) D() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string: %w", n.Line, err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config is the relay server configuration.
type Config struct {
	// Listen is the gRPC listen address.
	Listen string `yaml:"listen"`
	TLS    TLS    `yaml:"tls"`
	// Dev enables server reflection and the development logger.
	Dev bool `yaml:"dev"`

	Log      Log      `yaml:"log"`
	Sessions Sessions `yaml:"sessions"`
	History  History  `yaml:"history"`
	Stream   Stream   `yaml:"stream"`
	Limiter  Limiter  `yaml:"limiter"`
	Network  Network  `yaml:"network"`
}

// TLS configures transport security. Insecure serves plaintext.
type TLS struct {
	Cert     string `yaml:"cert"`
	Key      string `yaml:"key"`
	Insecure bool   `yaml:"insecure"`
}

type Log struct {
	// Level is a zap level name: debug, info, warn, error.
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Sessions configures the session registry.
type Sessions struct {
	// TTL is how long an unused session is kept. Zero keeps sessions forever.
	TTL           Duration `yaml:"ttl"`
	SweepInterval Duration `yaml:"sweep_interval"`
	// FriendsWait bounds how long GetFriendsList waits for the catalog.
	FriendsWait Duration `yaml:"friends_wait"`
	// CredentialPolicy is one of optional, issued, renewable.
	CredentialPolicy string `yaml:"credential_policy"`
	// MaxMessageLen bounds outgoing message bodies, in characters.
	MaxMessageLen int `yaml:"max_message_len"`
}

// History configures history aggregation.
type History struct {
	PageSize      int      `yaml:"page_size"`
	MaxPages      int      `yaml:"max_pages"`
	DefaultWindow Duration `yaml:"default_window"`
	Resolution    Duration `yaml:"resolution"`
}

// Stream configures live message streams.
type Stream struct {
	PollInterval Duration `yaml:"poll_interval"`
	QueueLimit   int      `yaml:"queue_limit"`
}

// Limiter configures login rate limiting.
type Limiter struct {
	// Backend is one of none, postgres, redis.
	Backend   string   `yaml:"backend"`
	DSN       string   `yaml:"dsn"`
	RedisAddr string   `yaml:"redis_addr"`
	Window    Duration `yaml:"window"`
	MaxFails  int      `yaml:"max_fails"`
	BlockFor  Duration `yaml:"block_for"`
}

// Network configures the in-memory messaging network.
type Network struct {
	// SignKey signs the network's tokens.
	SignKey      string    `yaml:"sign_key"`
	TokenTTL     Duration  `yaml:"token_ttl"`
	LoginTimeout Duration  `yaml:"login_timeout"`
	Accounts     []Account `yaml:"accounts"`
}

// Account is one account of the in-memory network.
type Account struct {
	// ID is the 64-bit account id in decimal.
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// PasswordHash is an argon2id PHC string (see relay-server hash-password).
	PasswordHash string `yaml:"password_hash"`
	Persona      string `yaml:"persona"`
	// Guard is one of none, email_code, device_code, email_confirmation, device_confirmation.
	Guard     string `yaml:"guard"`
	GuardCode string `yaml:"guard_code"`
	Email     string `yaml:"email"`
	Avatar    string `yaml:"avatar"`
	// Friends lists account names.
	Friends []string `yaml:"friends"`
}

// Default returns the configuration used before a file is applied.
func Default() *Config {
	return &Config{
		Listen: ":8443",
		TLS:    TLS{Cert: "cert.pem", Key: "key.pem"},
		Log:    Log{Level: "info"},
		Sessions: Sessions{
			TTL:              Duration(30 * time.Minute),
			SweepInterval:    Duration(time.Minute),
			FriendsWait:      Duration(10 * time.Second),
			CredentialPolicy: "issued",
			MaxMessageLen:    5000,
		},
		History: History{
			PageSize:      50,
			MaxPages:      10,
			DefaultWindow: Duration(24 * time.Hour),
			Resolution:    Duration(time.Nanosecond),
		},
		Stream: Stream{
			PollInterval: Duration(100 * time.Millisecond),
			QueueLimit:   1024,
		},
		Limiter: Limiter{
			Backend:  "none",
			Window:   Duration(15 * time.Minute),
			MaxFails: 5,
			BlockFor: Duration(15 * time.Minute),
		},
		Network: Network{
			TokenTTL:     Duration(30 * 24 * time.Hour),
			LoginTimeout: Duration(5 * time.Minute),
		},
	}
}

// Load reads path, or the file named by IM_RELAY_CONFIG when path is empty,
// over Default. With neither set it returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Decode(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode merges YAML data into c and expands variables.
func (c *Config) Decode(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	c.Network.SignKey = expandVars(c.Network.SignKey)
	c.Limiter.DSN = expandVars(c.Limiter.DSN)
	c.Limiter.RedisAddr = expandVars(c.Limiter.RedisAddr)
	return nil
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if v := os.Getenv(parts[1]); v != "" {
			return v
		}
		return parts[2]
	})
}

// Validate reports every problem found in c.
func (c *Config) Validate() error {
	var all []error
	add := func(format string, args ...any) { all = append(all, fmt.Errorf(format, args...)) }

	if c.Listen == "" {
		add("listen is required")
	}
	if !c.TLS.Insecure && (c.TLS.Cert == "" || c.TLS.Key == "") {
		add("tls.cert and tls.key are required unless tls.insecure is set")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		add("log.level: unknown level %q", c.Log.Level)
	}

	switch c.Sessions.CredentialPolicy {
	case "optional", "issued", "renewable":
	default:
		add("sessions.credential_policy: unknown policy %q", c.Sessions.CredentialPolicy)
	}
	if c.Sessions.TTL < 0 || c.Sessions.SweepInterval < 0 {
		add("sessions.ttl and sessions.sweep_interval must not be negative")
	}
	if c.Sessions.TTL > 0 && c.Sessions.SweepInterval <= 0 {
		add("sessions.sweep_interval is required when sessions.ttl is set")
	}
	if c.Sessions.FriendsWait <= 0 {
		add("sessions.friends_wait must be positive")
	}
	if c.Sessions.MaxMessageLen <= 0 {
		add("sessions.max_message_len must be positive")
	}

	if c.History.PageSize <= 0 || c.History.MaxPages <= 0 {
		add("history.page_size and history.max_pages must be positive")
	}
	if c.History.Resolution <= 0 || c.History.DefaultWindow <= 0 {
		add("history.resolution and history.default_window must be positive")
	}
	if c.Stream.PollInterval <= 0 || c.Stream.QueueLimit <= 0 {
		add("stream.poll_interval and stream.queue_limit must be positive")
	}

	switch c.Limiter.Backend {
	case "", "none":
	case "postgres":
		if c.Limiter.DSN == "" {
			add("limiter.dsn is required for the postgres backend")
		}
	case "redis":
		if c.Limiter.RedisAddr == "" {
			add("limiter.redis_addr is required for the redis backend")
		}
	default:
		add("limiter.backend: unknown backend %q", c.Limiter.Backend)
	}
	if c.Limiter.Backend == "postgres" || c.Limiter.Backend == "redis" {
		if c.Limiter.MaxFails <= 0 || c.Limiter.Window <= 0 || c.Limiter.BlockFor <= 0 {
			add("limiter.window, limiter.max_fails and limiter.block_for must be positive")
		}
	}

	if c.Network.SignKey == "" {
		add("network.sign_key is required")
	}
	if c.Network.TokenTTL <= 0 || c.Network.LoginTimeout <= 0 {
		add("network.token_ttl and network.login_timeout must be positive")
	}
	all = append(all, c.validateAccounts()...)

	return errors.Join(all...)
}

func (c *Config) validateAccounts() []error {
	var all []error
	names := make(map[string]bool, len(c.Network.Accounts))
	ids := make(map[string]bool, len(c.Network.Accounts))
	for i, a := range c.Network.Accounts {
		where := fmt.Sprintf("network.accounts[%d]", i)
		if _, err := strconv.ParseUint(a.ID, 10, 64); err != nil {
			all = append(all, fmt.Errorf("%s.id %q is not a decimal 64-bit id", where, a.ID))
		}
		if a.Name == "" {
			all = append(all, fmt.Errorf("%s.name is required", where))
		}
		if a.PasswordHash == "" {
			all = append(all, fmt.Errorf("%s.password_hash is required", where))
		}
		if names[a.Name] || ids[a.ID] {
			all = append(all, fmt.Errorf("%s: duplicate account %q", where, a.Name))
		}
		names[a.Name], ids[a.ID] = true, true
		switch a.Guard {
		case "", "none", "email_confirmation", "device_confirmation":
		case "email_code", "device_code":
			if a.GuardCode == "" {
				all = append(all, fmt.Errorf("%s.guard_code is required for guard %s", where, a.Guard))
			}
		default:
			all = append(all, fmt.Errorf("%s.guard: unknown guard %q", where, a.Guard))
		}
	}
	for i, a := range c.Network.Accounts {
		for _, f := range a.Friends {
			if !names[f] {
				all = append(all, fmt.Errorf("network.accounts[%d].friends: unknown account %q", i, f))
			}
		}
	}
	return all
}
