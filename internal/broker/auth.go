package broker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/im-relay/internal/errs"
	"github.com/and161185/im-relay/internal/model"
	"github.com/and161185/im-relay/internal/provider"
)

// errSessionClosed fails logins of sessions removed from the registry.
var errSessionClosed = errors.New("session closed")

// AuthInput is what one Authenticate call carries into the bridge.
type AuthInput struct {
	Username     string
	Password     string
	RefreshToken string
	Code         string
}

// AuthBridge drives one session's login through the provider's events and
// reports progress to Authenticate callers through a Slot.
//
// State changes:
//
//	created -> awaiting_challenge -> awaiting_token_confirmation -> logged_on
//	any     -> failed (terminal)
//
// logged_on needs both the connection's logged-on event and a refresh
// credential accepted by the policy.
type AuthBridge struct {
	key    model.SessionKey
	prov   provider.Provider
	policy CredentialPolicy
	cache  *UserCache
	log    *zap.Logger
	now    func() time.Time

	slot Slot[model.AuthResult]

	mu                sync.Mutex
	state             model.AuthState
	started           bool
	loginSet          chan struct{}
	login             provider.Login
	client            provider.Client
	username          string
	selfID            string
	refreshToken      string
	credentialOK      bool
	loggedOn          bool
	challenges        []model.Challenge
	challengeReported bool
	failure           model.AuthResult
}

var (
	_ provider.LoginHandler  = (*AuthBridge)(nil)
	_ provider.ClientHandler = (*AuthBridge)(nil)
)

func newAuthBridge(key model.SessionKey, prov provider.Provider, policy CredentialPolicy, cache *UserCache, log *zap.Logger) *AuthBridge {
	return &AuthBridge{
		key:          key,
		prov:         prov,
		policy:       policy,
		cache:        cache,
		log:          log,
		now:          time.Now,
		state:        model.StateCreated,
		loginSet:     make(chan struct{}),
		credentialOK: policy == CredentialOptional,
	}
}

// Authenticate installs a fresh result ticket, advances the state machine with
// in and waits for the outcome. Cancelling ctx abandons the wait but not the
// login, which keeps running and reports to the next call.
func (b *AuthBridge) Authenticate(ctx context.Context, in AuthInput) (model.AuthResult, error) {
	t := b.slot.Install()
	b.drive(ctx, in, t)
	return t.Wait(ctx)
}

// State returns the current login state.
func (b *AuthBridge) State() model.AuthState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Username returns the account name the login was started for.
func (b *AuthBridge) Username() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.username
}

// Connection returns the logged-on client and the account id it is logged on as.
func (b *AuthBridge) Connection() (provider.Client, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case model.StateLoggedOn:
		return b.client, b.selfID, nil
	case model.StateFailed:
		return nil, "", fmt.Errorf("%w: %w", errs.ErrNotLoggedOn, errs.ErrSessionFailed)
	default:
		return nil, "", errs.ErrNotLoggedOn
	}
}

// Close fails the login if it is still running and disconnects the client.
func (b *AuthBridge) Close() {
	b.fail(model.ReasonUnknownError, errSessionClosed)
}

func (b *AuthBridge) drive(ctx context.Context, in AuthInput, t *Ticket[model.AuthResult]) {
	b.mu.Lock()
	switch b.state {
	case model.StateCreated:
		if b.started {
			// Login is starting; its first event resolves t.
			b.mu.Unlock()
			return
		}
		b.started = true
		b.username = in.Username
		b.mu.Unlock()
		b.start(ctx, in)

	case model.StateAwaitingChallenge:
		if !b.challengeReported {
			b.challengeReported = true
			res := b.challengeResultLocked()
			b.mu.Unlock()
			t.Resolve(res)
			return
		}
		b.mu.Unlock()
		if in.Code == "" {
			// Confirmation guards are approved out of band; wait for the outcome.
			return
		}
		select {
		case <-b.loginSet:
		case <-ctx.Done():
			return
		}
		b.mu.Lock()
		login := b.login
		b.mu.Unlock()
		if login != nil {
			b.submit(ctx, login, in.Code, t)
		}

	case model.StateAwaitingTokenConfirmation:
		b.mu.Unlock()

	case model.StateLoggedOn:
		res := b.successResultLocked()
		b.mu.Unlock()
		t.Resolve(res)

	default:
		res := b.failure
		b.mu.Unlock()
		t.Resolve(res)
	}
}

func (b *AuthBridge) start(ctx context.Context, in AuthInput) {
	// The login outlives the call that started it.
	bg := context.WithoutCancel(ctx)

	if in.Password == "" && in.RefreshToken != "" {
		b.log.Info("logging on with refresh credential")
		b.mu.Lock()
		proceed := b.state == model.StateCreated
		if proceed {
			b.state = model.StateAwaitingTokenConfirmation
			b.acceptCredentialLocked(in.RefreshToken)
		}
		close(b.loginSet)
		b.mu.Unlock()
		if !proceed {
			return
		}
		if client, ok := b.attachClient(); ok {
			b.logOn(bg, client, in.RefreshToken)
		}
		return
	}

	b.log.Info("starting password login", zap.String("account", in.Username))
	login, err := b.prov.BeginLogin(bg, in.Username, in.Password, b)
	if err != nil {
		b.mu.Lock()
		close(b.loginSet)
		b.mu.Unlock()
		b.fail(classify(err), err)
		return
	}

	b.mu.Lock()
	failed := b.state == model.StateFailed
	if !failed {
		b.login = login
	}
	close(b.loginSet)
	b.mu.Unlock()
	if failed {
		login.Cancel()
	}
}

func (b *AuthBridge) submit(ctx context.Context, login provider.Login, code string, t *Ticket[model.AuthResult]) {
	err := login.SubmitCode(ctx, code)
	switch {
	case err == nil:
		// OnAuthenticated follows.
	case errors.Is(err, provider.ErrCodeMismatch):
		b.log.Info("guard code rejected")
		t.Resolve(model.AuthResult{
			Reason:     model.ReasonInvalidCredentials,
			SessionKey: b.key,
			Err:        errs.ErrInvalidCredentials,
		})
	case ctx.Err() != nil:
		// The caller went away; the attempt stays open for the next call.
	default:
		b.fail(model.ReasonUnknownError, err)
	}
}

func (b *AuthBridge) logOn(ctx context.Context, client provider.Client, token string) {
	if err := client.LogOn(ctx, token); err != nil {
		b.fail(classify(err), err)
	}
}

// OnChallenge implements provider.LoginHandler.
func (b *AuthBridge) OnChallenge(challenges []model.Challenge) {
	defer b.recoverEvent("challenge")
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case model.StateCreated:
		b.state = model.StateAwaitingChallenge
		b.challenges = slices.Clone(challenges)
		b.challengeReported = b.slot.Resolve(b.challengeResultLocked())
		b.log.Info("second factor requested",
			zap.Int("challenges", len(challenges)),
			zap.Bool("reported", b.challengeReported))
	case model.StateAwaitingChallenge:
		b.challenges = slices.Clone(challenges)
	}
}

// OnAuthenticated implements provider.LoginHandler.
func (b *AuthBridge) OnAuthenticated(tokens provider.Tokens) {
	defer b.recoverEvent("authenticated")
	b.mu.Lock()
	if b.state != model.StateCreated && b.state != model.StateAwaitingChallenge {
		b.mu.Unlock()
		return
	}
	b.state = model.StateAwaitingTokenConfirmation
	if tokens.AccountName != "" {
		b.username = tokens.AccountName
	}
	b.acceptCredentialLocked(tokens.RefreshToken)
	b.mu.Unlock()

	client, ok := b.attachClient()
	if !ok {
		return
	}
	b.log.Info("login authenticated; logging on")
	b.logOn(context.Background(), client, tokens.RefreshToken)
}

// attachClient creates the network client once the session has moved to
// AWAITING_TOKEN_CONFIRMATION. If the session failed meanwhile, the client is
// logged off and ok is false.
func (b *AuthBridge) attachClient() (client provider.Client, ok bool) {
	client = b.prov.NewClient(b)
	b.mu.Lock()
	if b.state == model.StateFailed {
		b.mu.Unlock()
		client.LogOff()
		return nil, false
	}
	b.client = client
	b.mu.Unlock()
	return client, true
}

// OnTimeout implements provider.LoginHandler.
func (b *AuthBridge) OnTimeout() {
	defer b.recoverEvent("timeout")
	b.fail(model.ReasonUnknownError, provider.ErrLoginTimeout)
}

// OnError implements provider.LoginHandler and provider.ClientHandler.
func (b *AuthBridge) OnError(err error) {
	defer b.recoverEvent("error")
	b.fail(classify(err), err)
}

// OnLoggedOn implements provider.ClientHandler.
func (b *AuthBridge) OnLoggedOn(selfID string) {
	defer b.recoverEvent("logged_on")
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != model.StateAwaitingTokenConfirmation {
		return
	}
	b.loggedOn = true
	b.selfID = selfID
	b.completeLocked()
}

// OnRefreshToken implements provider.ClientHandler.
func (b *AuthBridge) OnRefreshToken(token string) {
	defer b.recoverEvent("refresh_token")
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == model.StateFailed {
		return
	}
	b.acceptCredentialLocked(token)
	if b.state == model.StateAwaitingTokenConfirmation {
		b.completeLocked()
	}
}

// OnUserUpdated implements provider.ClientHandler.
func (b *AuthBridge) OnUserUpdated(id string, delta model.UserDelta) {
	defer b.recoverEvent("user_updated")
	b.cache.Merge(id, delta)
}

// OnFriendsListLoaded implements provider.ClientHandler.
func (b *AuthBridge) OnFriendsListLoaded() {
	defer b.recoverEvent("friends_loaded")
	b.cache.MarkLoaded()
}

func (b *AuthBridge) acceptCredentialLocked(token string) {
	if token == "" {
		return
	}
	if !b.policy.Accepts(token, b.now()) {
		b.log.Warn("refresh credential rejected by policy", zap.Stringer("policy", b.policy))
		return
	}
	b.refreshToken = token
	b.credentialOK = true
}

func (b *AuthBridge) completeLocked() {
	if !b.loggedOn || !b.credentialOK {
		return
	}
	b.state = model.StateLoggedOn
	b.log.Info("logged on", zap.String("self", b.selfID))
	b.slot.Resolve(b.successResultLocked())
}

func (b *AuthBridge) fail(reason model.AuthReason, err error) {
	b.mu.Lock()
	if b.state == model.StateFailed {
		b.mu.Unlock()
		return
	}
	prev := b.state
	b.state = model.StateFailed
	b.failure = model.AuthResult{Reason: reason, SessionKey: b.key, Err: err}
	res := b.failure
	login, client := b.login, b.client
	b.mu.Unlock()

	if errors.Is(err, errSessionClosed) {
		b.log.Info("session closed", zap.Stringer("from", prev))
	} else {
		b.log.Warn("login failed", zap.Stringer("from", prev), zap.Stringer("reason", reason), zap.Error(err))
	}
	b.slot.Resolve(res)
	if login != nil {
		login.Cancel()
	}
	if client != nil {
		client.LogOff()
	}
}

func (b *AuthBridge) recoverEvent(name string) {
	if r := recover(); r != nil {
		b.log.Error("panic in provider event", zap.String("event", name), zap.Any("reason", r))
		b.fail(model.ReasonUnknownError, fmt.Errorf("panic in %s event: %v", name, r))
	}
}

func (b *AuthBridge) challengeResultLocked() model.AuthResult {
	return model.AuthResult{
		Reason:     model.ReasonChallengeRequired,
		SessionKey: b.key,
		Challenges: slices.Clone(b.challenges),
	}
}

func (b *AuthBridge) successResultLocked() model.AuthResult {
	return model.AuthResult{
		Reason:       model.ReasonSuccess,
		SessionKey:   b.key,
		RefreshToken: b.refreshToken,
	}
}

// classify maps provider errors to the reason reported to callers.
func classify(err error) model.AuthReason {
	switch {
	case errors.Is(err, provider.ErrInvalidPassword),
		errors.Is(err, provider.ErrAccessDenied),
		errors.Is(err, provider.ErrCodeMismatch):
		return model.ReasonInvalidCredentials
	default:
		return model.ReasonUnknownError
	}
}
