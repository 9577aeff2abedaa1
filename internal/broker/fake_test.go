package broker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/and161185/im-relay/internal/model"
	"github.com/and161185/im-relay/internal/provider"
)

// fakeProvider drives handler events synchronously from inside the calls the
// bridge makes, which keeps the tests deterministic.
type fakeProvider struct {
	mu sync.Mutex

	password   string
	challenges []model.Challenge
	code       string
	tokens     provider.Tokens
	beginErr   error
	silent     bool // BeginLogin emits nothing

	selfID     string
	badToken   string
	renewTo    string
	loginH     provider.LoginHandler
	logins     int
	clients    []*fakeClient
	cancelled  int
	clientHook func(h provider.ClientHandler)
	createHook func() // runs inside NewClient, after the client exists
}

var _ provider.Provider = (*fakeProvider)(nil)

func (p *fakeProvider) BeginLogin(_ context.Context, name, password string, h provider.LoginHandler) (provider.Login, error) {
	p.mu.Lock()
	p.logins++
	p.loginH = h
	beginErr, silent, chs := p.beginErr, p.silent, p.challenges
	wrong := password != p.password
	tokens := p.tokens
	p.mu.Unlock()

	if beginErr != nil {
		return nil, beginErr
	}
	if wrong {
		return nil, provider.ErrInvalidPassword
	}
	l := &fakeLogin{p: p, h: h}
	switch {
	case silent:
	case len(chs) > 0:
		h.OnChallenge(chs)
	default:
		if tokens.AccountName == "" {
			tokens.AccountName = name
		}
		h.OnAuthenticated(tokens)
	}
	return l, nil
}

func (p *fakeProvider) NewClient(h provider.ClientHandler) provider.Client {
	p.mu.Lock()
	c := &fakeClient{p: p, h: h, done: make(chan struct{})}
	p.clients = append(p.clients, c)
	hook := p.createHook
	p.mu.Unlock()
	if hook != nil {
		hook()
	}
	return c
}

func (p *fakeProvider) clientCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clients)
}

func (p *fakeProvider) loginHandler() provider.LoginHandler {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loginH
}

func (p *fakeProvider) lastClient() *fakeClient {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.clients) == 0 {
		return nil
	}
	return p.clients[len(p.clients)-1]
}

type fakeLogin struct {
	p *fakeProvider
	h provider.LoginHandler
}

func (l *fakeLogin) SubmitCode(_ context.Context, code string) error {
	l.p.mu.Lock()
	want, tokens := l.p.code, l.p.tokens
	l.p.mu.Unlock()
	if code != want {
		return provider.ErrCodeMismatch
	}
	l.h.OnAuthenticated(tokens)
	return nil
}

func (l *fakeLogin) Cancel() {
	l.p.mu.Lock()
	l.p.cancelled++
	l.p.mu.Unlock()
}

type fakeClient struct {
	p    *fakeProvider
	h    provider.ClientHandler
	once sync.Once
	done chan struct{}

	mu        sync.Mutex
	listeners map[int]func(model.ChatMessage)
	nextID    int
}

func (c *fakeClient) LogOn(_ context.Context, token string) error {
	c.p.mu.Lock()
	bad, self, renew, hook := c.p.badToken, c.p.selfID, c.p.renewTo, c.p.clientHook
	c.p.mu.Unlock()
	if token == bad {
		return provider.ErrAccessDenied
	}
	if hook != nil {
		hook(c.h)
	}
	c.h.OnLoggedOn(self)
	if renew != "" {
		c.h.OnRefreshToken(renew)
	}
	c.h.OnFriendsListLoaded()
	return nil
}

func (c *fakeClient) LogOff()               { c.once.Do(func() { close(c.done) }) }
func (c *fakeClient) Done() <-chan struct{} { return c.done }

func (c *fakeClient) loggedOff() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *fakeClient) SendMessage(context.Context, string, string) error { return nil }
func (c *fakeClient) MessageHistory(context.Context, string, model.HistoryQuery) (model.HistoryPage, error) {
	return model.HistoryPage{}, nil
}
func (c *fakeClient) FriendRelationships() map[string]model.Relationship { return nil }
func (c *fakeClient) ActiveSessions(context.Context, time.Time) (model.ActiveSessions, error) {
	return model.ActiveSessions{}, nil
}
func (c *fakeClient) AckMessage(context.Context, string, time.Time) error { return nil }
func (c *fakeClient) OnFriendMessage(fn func(model.ChatMessage)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listeners == nil {
		c.listeners = map[int]func(model.ChatMessage){}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}
