package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sample = `
listen: "127.0.0.1:9000"
tls:
  insecure: true
log:
  level: debug
sessions:
  ttl: 10m
  sweep_interval: 30s
  credential_policy: renewable
history:
  page_size: 20
limiter:
  backend: redis
  redis_addr: "${TEST_RELAY_REDIS:-localhost:6379}"
network:
  sign_key: "${TEST_RELAY_SIGN_KEY}"
  accounts:
    - id: "76561197960287930"
      name: alice
      password_hash: "$argon2id$v=19$m=65536,t=3,p=1$c2FsdA$aGFzaA"
      guard: email_code
      guard_code: "12345"
      friends: [bob]
    - id: "76561197960287931"
      name: bob
      password_hash: "$argon2id$v=19$m=65536,t=3,p=1$c2FsdA$aGFzaA"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relay.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_OnlyMissesSignKey(t *testing.T) {
	cfg := Default()
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "network.sign_key") {
		t.Fatalf("want sign_key error, got %v", err)
	}
	cfg.Network.SignKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default with key must validate: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("TEST_RELAY_SIGN_KEY", "from-env")
	path := writeConfig(t, sample)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Listen != "127.0.0.1:9000" || !cfg.TLS.Insecure {
		t.Fatalf("listen/tls: %+v %+v", cfg.Listen, cfg.TLS)
	}
	if cfg.Sessions.TTL.D() != 10*time.Minute || cfg.Sessions.SweepInterval.D() != 30*time.Second {
		t.Fatalf("sessions: %+v", cfg.Sessions)
	}
	// Untouched keys keep their defaults.
	if cfg.History.PageSize != 20 || cfg.History.MaxPages != 10 {
		t.Fatalf("history: %+v", cfg.History)
	}
	if cfg.Network.SignKey != "from-env" {
		t.Fatalf("sign_key=%q", cfg.Network.SignKey)
	}
	if cfg.Limiter.RedisAddr != "localhost:6379" {
		t.Fatalf("redis_addr default not applied: %q", cfg.Limiter.RedisAddr)
	}
	if len(cfg.Network.Accounts) != 2 || cfg.Network.Accounts[0].Friends[0] != "bob" {
		t.Fatalf("accounts: %+v", cfg.Network.Accounts)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	path := writeConfig(t, "listen: \":7000\"\n")
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":7000" {
		t.Fatalf("listen=%q", cfg.Listen)
	}
}

func TestLoad_NoPath(t *testing.T) {
	t.Setenv(EnvConfig, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != Default().Listen {
		t.Fatalf("want defaults, got %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file must fail")
	}
	path := writeConfig(t, "sessions:\n  ttl: ten minutes\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("bad duration: %v", err)
	}
}

func TestValidate_ReportsEverything(t *testing.T) {
	cfg := Default()
	cfg.Network.SignKey = "k"
	cfg.Sessions.CredentialPolicy = "sometimes"
	cfg.Limiter.Backend = "postgres"
	cfg.Network.Accounts = []Account{
		{ID: "x", Name: "alice", PasswordHash: "h", Guard: "email_code", Friends: []string{"carol"}},
		{ID: "2", Name: "alice", PasswordHash: "h", Guard: "sms"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("want errors")
	}
	for _, want := range []string{
		"credential_policy",
		"limiter.dsn",
		"accounts[0].id",
		"guard_code",
		"duplicate account",
		"unknown guard",
		"unknown account \"carol\"",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("missing %q in:\n%v", want, err)
		}
	}
}
