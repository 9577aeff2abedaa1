package broker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/and161185/im-relay/internal/errs"
	"github.com/and161185/im-relay/internal/model"
	"github.com/and161185/im-relay/internal/provider"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestRegistry(t *testing.T, ttl time.Duration) (*Registry, *fakeProvider, *fakeClock) {
	t.Helper()
	p := &fakeProvider{password: "pw", tokens: provider.Tokens{RefreshToken: "rt"}, selfID: "1"}
	r := NewRegistry(Config{Provider: p, Policy: CredentialIssued, TTL: ttl, Logger: zaptest.NewLogger(t)})
	clk := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	r.now = clk.Now
	return r, p, clk
}

func TestRegistry_CreateAndResume(t *testing.T) {
	r, _, _ := newTestRegistry(t, time.Hour)

	key, s, isNew, err := r.CreateOrResume("")
	if err != nil || !isNew || key == "" || s == nil {
		t.Fatalf("create: key=%q new=%v err=%v", key, isNew, err)
	}
	if s.Key != key {
		t.Fatalf("session key mismatch")
	}

	key2, s2, isNew, err := r.CreateOrResume(key)
	if err != nil || isNew || key2 != key || s2 != s {
		t.Fatalf("resume: key=%q new=%v same=%v err=%v", key2, isNew, s2 == s, err)
	}

	key3, s3, isNew, err := r.CreateOrResume("no-such-key")
	if err != nil || !isNew || key3 == "no-such-key" || key3 == key || s3 == s {
		t.Fatalf("unknown key: key=%q new=%v err=%v", key3, isNew, err)
	}
	if _, err := r.Get("no-such-key"); !errors.Is(err, errs.ErrSessionNotFound) {
		t.Fatalf("Get unknown: %v", err)
	}
}

func TestRegistry_KeysAreUnique(t *testing.T) {
	r, _, _ := newTestRegistry(t, time.Hour)
	seen := map[model.SessionKey]bool{}
	for i := 0; i < 100; i++ {
		key, _, _, err := r.CreateOrResume("")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if seen[key] {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = true
	}
	if r.Len() != 100 {
		t.Fatalf("Len=%d", r.Len())
	}
}

func TestRegistry_RemoveLogsOff(t *testing.T) {
	r, p, _ := newTestRegistry(t, time.Hour)
	key, s, _, _ := r.CreateOrResume("")
	if _, err := s.Auth.Authenticate(context.Background(), AuthInput{Username: "u", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	if !r.Remove(key) {
		t.Fatalf("Remove existing key reported false")
	}
	if r.Remove(key) {
		t.Fatalf("second Remove reported true")
	}
	if !p.lastClient().loggedOff() {
		t.Fatalf("removed session still connected")
	}
	if _, err := r.Get(key); !errors.Is(err, errs.ErrSessionNotFound) {
		t.Fatalf("removed key still resolvable: %v", err)
	}
	// Keys are not reused even after removal.
	for i := 0; i < 10; i++ {
		k, _, _, _ := r.CreateOrResume("")
		if k == key {
			t.Fatalf("key reused")
		}
	}
}

func TestRegistry_SweepEvictsIdle(t *testing.T) {
	r, _, clk := newTestRegistry(t, time.Minute)
	idleKey, _, _, _ := r.CreateOrResume("")
	busyKey, busy, _, _ := r.CreateOrResume("")
	freshKey, _, _, _ := r.CreateOrResume("")

	release := busy.Acquire()
	clk.Advance(2 * time.Minute)
	if _, err := r.Get(freshKey); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if n := r.Sweep(clk.Now()); n != 1 {
		t.Fatalf("evicted %d, want 1", n)
	}
	if _, err := r.Get(idleKey); !errors.Is(err, errs.ErrSessionNotFound) {
		t.Fatalf("idle session survived")
	}
	if _, err := r.Get(busyKey); err != nil {
		t.Fatalf("busy session evicted")
	}

	release()
	release()
	if busy.Streams() != 0 {
		t.Fatalf("streams=%d", busy.Streams())
	}
	clk.Advance(2 * time.Minute)
	if n := r.Sweep(clk.Now()); n != 2 {
		t.Fatalf("evicted %d, want 2", n)
	}
	if r.Len() != 0 {
		t.Fatalf("Len=%d", r.Len())
	}
}

func TestRegistry_SweepDisabledWithoutTTL(t *testing.T) {
	r, _, clk := newTestRegistry(t, 0)
	r.CreateOrResume("")
	clk.Advance(24 * time.Hour)
	if n := r.Sweep(clk.Now()); n != 0 {
		t.Fatalf("evicted %d with TTL disabled", n)
	}
}

func TestRegistry_Close(t *testing.T) {
	r, _, _ := newTestRegistry(t, time.Hour)
	_, s, _, _ := r.CreateOrResume("")
	r.Close()
	if s.Auth.State() != model.StateFailed {
		t.Fatalf("closed registry left session in %s", s.Auth.State())
	}
	if _, _, _, err := r.CreateOrResume(""); err == nil {
		t.Fatalf("closed registry accepted a new session")
	}
}

func TestRegistry_RunStopsOnCancel(t *testing.T) {
	r, _, _ := newTestRegistry(t, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
