package broker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/im-relay/internal/errs"
	"github.com/and161185/im-relay/internal/model"
	"github.com/and161185/im-relay/internal/provider"
)

func newTestBridge(t *testing.T, p *fakeProvider, policy CredentialPolicy) *AuthBridge {
	t.Helper()
	return newAuthBridge("key-1", p, policy, NewUserCache(), zaptest.NewLogger(t))
}

func renewToken(t *testing.T, aud []string, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "76561197960287930",
		Audience:  aud,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func authWithin(t *testing.T, b *AuthBridge, in AuthInput, d time.Duration) (model.AuthResult, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return b.Authenticate(ctx, in)
}

func TestAuthBridge_ChallengeThenCode(t *testing.T) {
	p := &fakeProvider{
		password:   "pw1",
		challenges: []model.Challenge{{Type: model.ChallengeEmailCode, Detail: "a***@example.com"}},
		code:       "12345",
		tokens:     provider.Tokens{AccountName: "alice", RefreshToken: "rt-1"},
		selfID:     "76561197960287930",
	}
	b := newTestBridge(t, p, CredentialIssued)

	res, err := authWithin(t, b, AuthInput{Username: "alice", Password: "pw1"}, time.Second)
	if err != nil {
		t.Fatalf("Authenticate #1: %v", err)
	}
	if res.Reason != model.ReasonChallengeRequired {
		t.Fatalf("want CHALLENGE_REQUIRED, got %s", res.Reason)
	}
	if len(res.Challenges) != 1 || res.Challenges[0].Type != model.ChallengeEmailCode {
		t.Fatalf("unexpected challenges: %+v", res.Challenges)
	}
	if res.SessionKey != "key-1" {
		t.Fatalf("session key not echoed: %q", res.SessionKey)
	}

	res, err = authWithin(t, b, AuthInput{Code: "00000"}, time.Second)
	if err != nil {
		t.Fatalf("Authenticate #2: %v", err)
	}
	if res.Reason != model.ReasonInvalidCredentials {
		t.Fatalf("want INVALID_CREDENTIALS for wrong code, got %s", res.Reason)
	}
	if st := b.State(); st != model.StateAwaitingChallenge {
		t.Fatalf("wrong code must keep the challenge open, state=%s", st)
	}

	res, err = authWithin(t, b, AuthInput{Code: "12345"}, time.Second)
	if err != nil {
		t.Fatalf("Authenticate #3: %v", err)
	}
	if !res.Succeeded() || res.RefreshToken != "rt-1" {
		t.Fatalf("want SUCCESS with refresh token, got %+v", res)
	}
	if st := b.State(); st != model.StateLoggedOn {
		t.Fatalf("state=%s", st)
	}
	c, self, err := b.Connection()
	if err != nil || c == nil || self != "76561197960287930" {
		t.Fatalf("Connection: c=%v self=%q err=%v", c, self, err)
	}
	if b.Username() != "alice" {
		t.Fatalf("username=%q", b.Username())
	}

	// A resumed call on a logged-on session reports success again.
	res, err = authWithin(t, b, AuthInput{}, time.Second)
	if err != nil || !res.Succeeded() {
		t.Fatalf("resume after logon: res=%+v err=%v", res, err)
	}
	if p.logins != 1 {
		t.Fatalf("login must start once, got %d", p.logins)
	}
}

func TestAuthBridge_NoChallenge(t *testing.T) {
	p := &fakeProvider{password: "pw", tokens: provider.Tokens{RefreshToken: "rt"}, selfID: "1"}
	b := newTestBridge(t, p, CredentialIssued)

	res, err := authWithin(t, b, AuthInput{Username: "bob", Password: "pw"}, time.Second)
	if err != nil || !res.Succeeded() {
		t.Fatalf("res=%+v err=%v", res, err)
	}
	if !b.cache.Loaded() {
		t.Fatalf("friends list should be marked loaded")
	}
}

func TestAuthBridge_WrongPasswordIsTerminal(t *testing.T) {
	p := &fakeProvider{password: "right"}
	b := newTestBridge(t, p, CredentialIssued)

	res, err := authWithin(t, b, AuthInput{Username: "bob", Password: "wrong"}, time.Second)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if res.Reason != model.ReasonInvalidCredentials || !errors.Is(res.Err, provider.ErrInvalidPassword) {
		t.Fatalf("unexpected result %+v", res)
	}
	if b.State() != model.StateFailed {
		t.Fatalf("state=%s", b.State())
	}

	// Failed is terminal: retrying on the same session reports the same outcome.
	res, err = authWithin(t, b, AuthInput{Username: "bob", Password: "right"}, time.Second)
	if err != nil || res.Reason != model.ReasonInvalidCredentials {
		t.Fatalf("retry on failed session: res=%+v err=%v", res, err)
	}
	if p.logins != 1 {
		t.Fatalf("failed session must not start another login, got %d", p.logins)
	}
	if _, _, err := b.Connection(); !errors.Is(err, errs.ErrSessionFailed) {
		t.Fatalf("Connection err=%v", err)
	}
}

func TestAuthBridge_ChallengeReportedOnceToNextCall(t *testing.T) {
	p := &fakeProvider{password: "pw", silent: true, code: "1"}
	b := newTestBridge(t, p, CredentialIssued)

	// The first call gives up before the challenge arrives.
	if _, err := authWithin(t, b, AuthInput{Username: "u", Password: "pw"}, 20*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline exceeded, got %v", err)
	}
	p.loginHandler().OnChallenge([]model.Challenge{{Type: model.ChallengeDeviceCode}})
	if b.State() != model.StateAwaitingChallenge {
		t.Fatalf("state=%s", b.State())
	}

	res, err := authWithin(t, b, AuthInput{}, time.Second)
	if err != nil || res.Reason != model.ReasonChallengeRequired {
		t.Fatalf("next call must see the challenge: res=%+v err=%v", res, err)
	}

	// Already reported: a call without a code now waits for the outcome.
	if _, err := authWithin(t, b, AuthInput{}, 20*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want the second report suppressed, got %v", err)
	}
}

func TestAuthBridge_AbandonedCallDoesNotStealResult(t *testing.T) {
	p := &fakeProvider{password: "pw", silent: true, tokens: provider.Tokens{RefreshToken: "rt"}, selfID: "9"}
	b := newTestBridge(t, p, CredentialIssued)

	if _, err := authWithin(t, b, AuthInput{Username: "u", Password: "pw"}, 10*time.Millisecond); err == nil {
		t.Fatalf("want first call to time out")
	}

	done := make(chan model.AuthResult, 1)
	go func() {
		res, _ := b.Authenticate(context.Background(), AuthInput{})
		done <- res
	}()
	waitFor(t, "second call to wait", b.slot.Waiting)

	p.loginHandler().OnAuthenticated(provider.Tokens{AccountName: "u", RefreshToken: "rt"})
	select {
	case res := <-done:
		if !res.Succeeded() {
			t.Fatalf("want success delivered to the live call, got %+v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("live call never resolved")
	}
}

func TestAuthBridge_RefreshTokenLogon(t *testing.T) {
	tok := renewToken(t, []string{"client", "renew"}, time.Now().Add(time.Hour))
	p := &fakeProvider{selfID: "7"}
	b := newTestBridge(t, p, CredentialRenewable)

	res, err := authWithin(t, b, AuthInput{RefreshToken: tok}, time.Second)
	if err != nil || !res.Succeeded() {
		t.Fatalf("res=%+v err=%v", res, err)
	}
	if res.RefreshToken != tok {
		t.Fatalf("want supplied token echoed back")
	}
	if p.logins != 0 {
		t.Fatalf("refresh logon must not start a password login")
	}
}

func TestAuthBridge_RenewablePolicyWaitsForCredential(t *testing.T) {
	web := renewToken(t, []string{"client", "web"}, time.Now().Add(time.Hour))
	p := &fakeProvider{selfID: "7"}
	b := newTestBridge(t, p, CredentialRenewable)

	if _, err := authWithin(t, b, AuthInput{RefreshToken: web}, 20*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want wait for a renewable credential, got %v", err)
	}
	if b.State() != model.StateAwaitingTokenConfirmation {
		t.Fatalf("state=%s", b.State())
	}

	renewed := renewToken(t, []string{"client", "renew"}, time.Now().Add(time.Hour))
	p.lastClient().h.OnRefreshToken(renewed)
	if b.State() != model.StateLoggedOn {
		t.Fatalf("state=%s", b.State())
	}
	res, err := authWithin(t, b, AuthInput{}, time.Second)
	if err != nil || res.RefreshToken != renewed {
		t.Fatalf("res=%+v err=%v", res, err)
	}
}

func TestAuthBridge_RejectedRefreshToken(t *testing.T) {
	p := &fakeProvider{badToken: "stale"}
	b := newTestBridge(t, p, CredentialIssued)

	res, err := authWithin(t, b, AuthInput{RefreshToken: "stale"}, time.Second)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if res.Reason != model.ReasonInvalidCredentials || !errors.Is(res.Err, provider.ErrAccessDenied) {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestAuthBridge_LoginTimeout(t *testing.T) {
	p := &fakeProvider{password: "pw", silent: true}
	b := newTestBridge(t, p, CredentialIssued)

	done := make(chan model.AuthResult, 1)
	go func() {
		res, _ := b.Authenticate(context.Background(), AuthInput{Username: "u", Password: "pw"})
		done <- res
	}()
	waitFor(t, "login to start", func() bool { return p.loginHandler() != nil })

	p.loginHandler().OnTimeout()
	res := <-done
	if res.Reason != model.ReasonUnknownError || !errors.Is(res.Err, provider.ErrLoginTimeout) {
		t.Fatalf("unexpected result %+v", res)
	}
	waitFor(t, "login cancel", func() bool {
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.cancelled == 1
	})
}

func TestAuthBridge_ConnectionErrorFailsSession(t *testing.T) {
	p := &fakeProvider{password: "pw", tokens: provider.Tokens{RefreshToken: "rt"}, selfID: "1"}
	b := newTestBridge(t, p, CredentialIssued)
	if res, err := authWithin(t, b, AuthInput{Username: "u", Password: "pw"}, time.Second); err != nil || !res.Succeeded() {
		t.Fatalf("login: res=%+v err=%v", res, err)
	}

	c := p.lastClient()
	c.h.OnError(errors.New("connection reset"))
	if b.State() != model.StateFailed {
		t.Fatalf("state=%s", b.State())
	}
	if !c.loggedOff() {
		t.Fatalf("client must be logged off after a fatal error")
	}
	if _, _, err := b.Connection(); !errors.Is(err, errs.ErrNotLoggedOn) {
		t.Fatalf("Connection err=%v", err)
	}
}

func TestAuthBridge_UserUpdatesReachCache(t *testing.T) {
	name := "Bob"
	p := &fakeProvider{
		password: "pw",
		tokens:   provider.Tokens{RefreshToken: "rt"},
		selfID:   "1",
		clientHook: func(h provider.ClientHandler) {
			h.OnUserUpdated("2", model.UserDelta{Name: &name})
		},
	}
	b := newTestBridge(t, p, CredentialIssued)
	if _, err := authWithin(t, b, AuthInput{Username: "u", Password: "pw"}, time.Second); err != nil {
		t.Fatalf("login: %v", err)
	}
	u, ok := b.cache.Get("2")
	if !ok || u.Name != "Bob" || u.State != model.PersonaUnknown {
		t.Fatalf("cache entry: %+v ok=%v", u, ok)
	}
}

func TestAuthBridge_CloseLogsOff(t *testing.T) {
	p := &fakeProvider{password: "pw", tokens: provider.Tokens{RefreshToken: "rt"}, selfID: "1"}
	b := newTestBridge(t, p, CredentialIssued)
	if _, err := authWithin(t, b, AuthInput{Username: "u", Password: "pw"}, time.Second); err != nil {
		t.Fatalf("login: %v", err)
	}
	b.Close()
	b.Close()
	if !p.lastClient().loggedOff() {
		t.Fatalf("Close must log the client off")
	}
	if b.State() != model.StateFailed {
		t.Fatalf("state=%s", b.State())
	}
}

func TestAuthBridge_AuthenticatedAfterCloseCreatesNoClient(t *testing.T) {
	p := &fakeProvider{password: "pw", silent: true, selfID: "1"}
	b := newTestBridge(t, p, CredentialIssued)

	done := make(chan model.AuthResult, 1)
	go func() {
		res, _ := b.Authenticate(context.Background(), AuthInput{Username: "u", Password: "pw"})
		done <- res
	}()
	waitFor(t, "login to start", func() bool { return p.loginHandler() != nil })

	b.Close()
	<-done
	p.loginHandler().OnAuthenticated(provider.Tokens{AccountName: "u", RefreshToken: "rt"})

	if n := p.clientCount(); n != 0 {
		t.Fatalf("closed session created %d clients", n)
	}
	if b.State() != model.StateFailed {
		t.Fatalf("state=%s", b.State())
	}
}

func TestAuthBridge_CloseWhileClientIsCreated(t *testing.T) {
	p := &fakeProvider{password: "pw", tokens: provider.Tokens{RefreshToken: "rt"}, selfID: "1"}
	b := newTestBridge(t, p, CredentialIssued)
	p.createHook = b.Close

	res, err := authWithin(t, b, AuthInput{Username: "u", Password: "pw"}, time.Second)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if res.Succeeded() {
		t.Fatalf("closed session logged on: %+v", res)
	}
	c := p.lastClient()
	if c == nil || !c.loggedOff() {
		t.Fatalf("client created during Close must be logged off")
	}
	if b.State() != model.StateFailed {
		t.Fatalf("state=%s", b.State())
	}
}

func TestAuthBridge_CloseWhileRefreshClientIsCreated(t *testing.T) {
	p := &fakeProvider{selfID: "1"}
	b := newTestBridge(t, p, CredentialIssued)
	p.createHook = b.Close

	res, err := authWithin(t, b, AuthInput{RefreshToken: "rt"}, time.Second)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if res.Succeeded() || !p.lastClient().loggedOff() {
		t.Fatalf("res=%+v, client must be logged off", res)
	}
	if b.State() != model.StateFailed {
		t.Fatalf("state=%s", b.State())
	}
}
