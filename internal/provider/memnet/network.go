// Package memnet is an in-memory messaging network. It implements the
// provider interfaces with configured accounts, guard challenges, signed
// refresh tokens and one-to-one conversations, for development servers and
// end-to-end tests.
package memnet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/and161185/im-relay/internal/config"
	"github.com/and161185/im-relay/internal/crypto"
	"github.com/and161185/im-relay/internal/model"
	"github.com/and161185/im-relay/internal/provider"
)

const (
	issuer = "memnet"

	audClient = "client"
	audRenew  = "renew"
	audWeb    = "web"

	accessTTL = time.Hour

	avatarBase = "https://avatars.memnet.invalid/"
)

// ErrNoPendingLogin is returned by Approve when the account has no login
// waiting for a confirmation.
var ErrNoPendingLogin = errors.New("memnet: no login awaiting confirmation")

type account struct {
	id        string
	name      string
	hash      string
	persona   string
	guard     model.ChallengeType
	guardCode string
	email     string
	avatar    string
	friends   map[string]struct{}
	lastLogon time.Time
	lastOff   time.Time
}

// Network is the in-memory messaging network.
type Network struct {
	signKey      []byte
	tokenTTL     time.Duration
	loginTimeout time.Duration
	log          *zap.Logger
	now          func() time.Time

	accounts map[string]*account // by name
	byID     map[string]*account

	mu        sync.Mutex
	pending   map[string]*login // by account name
	online    map[string]map[*Client]struct{}
	convs     map[convKey]*conversation
	lastStamp time.Time
}

var _ provider.Provider = (*Network)(nil)

// New builds a network from configuration. Friendships are symmetric.
func New(cfg config.Network, log *zap.Logger) (*Network, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.SignKey == "" {
		return nil, errors.New("memnet: sign key is required")
	}
	n := &Network{
		signKey:      []byte(cfg.SignKey),
		tokenTTL:     cfg.TokenTTL.D(),
		loginTimeout: cfg.LoginTimeout.D(),
		log:          log,
		now:          time.Now,
		accounts:     make(map[string]*account, len(cfg.Accounts)),
		byID:         make(map[string]*account, len(cfg.Accounts)),
		pending:      make(map[string]*login),
		online:       make(map[string]map[*Client]struct{}),
		convs:        make(map[convKey]*conversation),
	}
	if n.tokenTTL <= 0 {
		n.tokenTTL = 30 * 24 * time.Hour
	}
	if n.loginTimeout <= 0 {
		n.loginTimeout = 5 * time.Minute
	}

	for _, a := range cfg.Accounts {
		id, err := strconv.ParseUint(a.ID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("memnet: account %q: id: %w", a.Name, err)
		}
		guard, err := parseGuard(a.Guard)
		if err != nil {
			return nil, fmt.Errorf("memnet: account %q: %w", a.Name, err)
		}
		acc := &account{
			id:        strconv.FormatUint(id, 10),
			name:      a.Name,
			hash:      a.PasswordHash,
			persona:   a.Persona,
			guard:     guard,
			guardCode: a.GuardCode,
			email:     a.Email,
			avatar:    a.Avatar,
			friends:   make(map[string]struct{}),
		}
		if acc.persona == "" {
			acc.persona = a.Name
		}
		if _, dup := n.accounts[acc.name]; dup {
			return nil, fmt.Errorf("memnet: duplicate account %q", acc.name)
		}
		if _, dup := n.byID[acc.id]; dup {
			return nil, fmt.Errorf("memnet: duplicate account id %s", acc.id)
		}
		n.accounts[acc.name] = acc
		n.byID[acc.id] = acc
	}
	for _, a := range cfg.Accounts {
		acc := n.accounts[a.Name]
		for _, name := range a.Friends {
			f, ok := n.accounts[name]
			if !ok {
				return nil, fmt.Errorf("memnet: account %q: unknown friend %q", a.Name, name)
			}
			acc.friends[f.id] = struct{}{}
			f.friends[acc.id] = struct{}{}
		}
	}
	return n, nil
}

func parseGuard(s string) (model.ChallengeType, error) {
	switch s {
	case "", "none":
		return model.ChallengeNone, nil
	case "email_code":
		return model.ChallengeEmailCode, nil
	case "device_code":
		return model.ChallengeDeviceCode, nil
	case "email_confirmation":
		return model.ChallengeEmailConfirmation, nil
	case "device_confirmation":
		return model.ChallengeDeviceConfirmation, nil
	default:
		return 0, fmt.Errorf("unknown guard %q", s)
	}
}

// BeginLogin implements provider.Provider.
func (n *Network) BeginLogin(ctx context.Context, accountName, password string, h provider.LoginHandler) (provider.Login, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	acc, ok := n.accounts[accountName]
	if !ok {
		return nil, provider.ErrInvalidPassword
	}
	match, err := crypto.VerifyPassword(password, acc.hash)
	if err != nil {
		return nil, fmt.Errorf("memnet: account %q: %w", accountName, err)
	}
	if !match {
		return nil, provider.ErrInvalidPassword
	}
	return n.startLogin(acc, h), nil
}

// NewClient implements provider.Provider.
func (n *Network) NewClient(h provider.ClientHandler) provider.Client {
	return &Client{
		net:       n,
		h:         h,
		d:         newDispatcher(),
		listeners: make(map[int]func(model.ChatMessage)),
		done:      make(chan struct{}),
	}
}

// Approve completes a pending confirmation-guarded login of the account,
// as if the user confirmed it out of band.
func (n *Network) Approve(accountName string) error {
	n.mu.Lock()
	l, ok := n.pending[accountName]
	n.mu.Unlock()
	if !ok || l.acc.guard.NeedsCode() {
		return ErrNoPendingLogin
	}
	if !l.complete() {
		return ErrNoPendingLogin
	}
	return nil
}

// AccountID returns the id of the named account.
func (n *Network) AccountID(name string) (string, bool) {
	acc, ok := n.accounts[name]
	if !ok {
		return "", false
	}
	return acc.id, true
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Account string `json:"acct,omitempty"`
}

func (n *Network) issueTokens(acc *account) (provider.Tokens, error) {
	refresh, err := n.sign(acc, []string{audClient, audRenew}, n.tokenTTL)
	if err != nil {
		return provider.Tokens{}, err
	}
	access, err := n.sign(acc, []string{audClient, audWeb}, accessTTL)
	if err != nil {
		return provider.Tokens{}, err
	}
	return provider.Tokens{AccountName: acc.name, AccessToken: access, RefreshToken: refresh}, nil
}

func (n *Network) sign(acc *account, aud []string, ttl time.Duration) (string, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("memnet: token id: %w", err)
	}
	now := n.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   acc.id,
			Audience:  aud,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti.String(),
		},
		Account: acc.name,
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(n.signKey)
	if err != nil {
		return "", fmt.Errorf("memnet: sign token: %w", err)
	}
	return s, nil
}

// verifyRefresh checks a refresh token and returns its account and claims.
func (n *Network) verifyRefresh(token string) (*account, *tokenClaims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) { return n.signKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audRenew),
		jwt.WithTimeFunc(n.now),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", provider.ErrAccessDenied, err)
	}
	acc, ok := n.byID[claims.Subject]
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown account %s", provider.ErrAccessDenied, claims.Subject)
	}
	return acc, &claims, nil
}

// renewalDue reports whether a refresh token is past half its lifetime.
func (n *Network) renewalDue(c *tokenClaims) bool {
	if c.IssuedAt == nil || c.ExpiresAt == nil {
		return true
	}
	life := c.ExpiresAt.Sub(c.IssuedAt.Time)
	return n.now().Sub(c.IssuedAt.Time) > life/2
}

func (n *Network) setOnline(c *Client, id string, on bool) (first bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	set := n.online[id]
	if on {
		if set == nil {
			set = make(map[*Client]struct{})
			n.online[id] = set
		}
		first = len(set) == 0
		set[c] = struct{}{}
		return first
	}
	if _, ok := set[c]; !ok {
		return false
	}
	delete(set, c)
	if len(set) == 0 {
		delete(n.online, id)
		return true
	}
	return false
}

func (n *Network) clientsOf(id string) []*Client {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*Client, 0, len(n.online[id]))
	for c := range n.online[id] {
		out = append(out, c)
	}
	return out
}

func (n *Network) isOnline(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.online[id]) > 0
}

// presence builds the deltas describing acc to a viewer: identity and
// presence first, then profile details.
func (n *Network) presence(acc *account) []model.UserDelta {
	n.mu.Lock()
	state := model.PersonaOffline
	if len(n.online[acc.id]) > 0 {
		state = model.PersonaOnline
	}
	logon, logoff := acc.lastLogon, acc.lastOff
	n.mu.Unlock()

	name := acc.persona
	first := model.UserDelta{Name: &name, State: &state}
	second := model.UserDelta{}
	if acc.avatar != "" {
		second.Avatar = &model.Avatar{
			Icon:   avatarBase + acc.avatar + ".jpg",
			Medium: avatarBase + acc.avatar + "_medium.jpg",
			Full:   avatarBase + acc.avatar + "_full.jpg",
		}
	}
	if !logon.IsZero() {
		second.LastLogon = &logon
	}
	if !logoff.IsZero() {
		second.LastLogoff = &logoff
	}
	if state == model.PersonaOnline {
		seen := n.now()
		second.LastSeenOnline = &seen
	}
	return []model.UserDelta{first, second}
}

// emailDomain returns the part of an address shown in e-mail challenges.
func emailDomain(email string) string {
	if i := strings.LastIndexByte(email, '@'); i >= 0 {
		return email[i+1:]
	}
	return ""
}
