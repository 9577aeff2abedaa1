// Package broker keeps relay sessions: the registry of session keys, each
// session's login state machine and its reconciled view of the friends list.
package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/im-relay/internal/errs"
	"github.com/and161185/im-relay/internal/model"
	"github.com/and161185/im-relay/internal/provider"
)

var errRegistryClosed = errors.New("session registry closed")

// Config configures a Registry.
type Config struct {
	Provider provider.Provider
	Policy   CredentialPolicy
	// TTL is how long a session may stay unused before Sweep evicts it.
	// Zero disables eviction.
	TTL    time.Duration
	Logger *zap.Logger
}

// Registry maps session keys to sessions. Keys are random and never reused
// within a process.
type Registry struct {
	prov   provider.Provider
	policy CredentialPolicy
	ttl    time.Duration
	log    *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[model.SessionKey]*Session
	issued   map[model.SessionKey]struct{}
	closed   bool
}

// NewRegistry returns an empty registry.
func NewRegistry(cfg Config) *Registry {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		prov:     cfg.Provider,
		policy:   cfg.Policy,
		ttl:      cfg.TTL,
		log:      log,
		now:      time.Now,
		sessions: make(map[model.SessionKey]*Session),
		issued:   make(map[model.SessionKey]struct{}),
	}
}

// CreateOrResume returns the session for key. When key is empty or not
// registered it creates a session under a fresh key; a supplied key is never
// adopted.
func (r *Registry) CreateOrResume(key model.SessionKey) (model.SessionKey, *Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return "", nil, false, errRegistryClosed
	}
	if s, ok := r.sessions[key]; ok && key != "" {
		s.Touch()
		return key, s, false, nil
	}

	key, err := r.newKeyLocked()
	if err != nil {
		return "", nil, false, err
	}
	now := r.now()
	cache := NewUserCache()
	cache.now = r.now
	s := &Session{
		Key:        key,
		Users:      cache,
		created:    now,
		now:        r.now,
		lastActive: now,
	}
	s.Auth = newAuthBridge(key, r.prov, r.policy, cache, r.log.With(zap.String("session", key.Short())))
	s.Auth.now = r.now
	r.sessions[key] = s
	r.issued[key] = struct{}{}
	r.log.Debug("session created", zap.String("session", key.Short()), zap.Int("sessions", len(r.sessions)))
	return key, s, true, nil
}

func (r *Registry) newKeyLocked() (model.SessionKey, error) {
	for {
		id, err := uuid.NewV4()
		if err != nil {
			return "", fmt.Errorf("new session key: %w", err)
		}
		key := model.SessionKey(id.String())
		if _, dup := r.issued[key]; !dup {
			return key, nil
		}
	}
}

// Get returns the session for key and records activity on it.
func (r *Registry) Get(key model.SessionKey) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[key]
	r.mu.Unlock()
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	s.Touch()
	return s, nil
}

// Remove logs the session off and forgets it. It reports whether key existed.
func (r *Registry) Remove(key model.SessionKey) bool {
	r.mu.Lock()
	s, ok := r.sessions[key]
	delete(r.sessions, key)
	r.mu.Unlock()
	if !ok {
		return false
	}
	s.Auth.Close()
	r.log.Info("session removed", zap.String("session", key.Short()))
	return true
}

// Sweep evicts sessions idle for longer than the TTL at now and returns how
// many it removed. Sessions with an active stream are kept.
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-r.ttl)

	var evicted []*Session
	r.mu.Lock()
	for key, s := range r.sessions {
		if s.idle(cutoff) {
			evicted = append(evicted, s)
			delete(r.sessions, key)
		}
	}
	left := len(r.sessions)
	r.mu.Unlock()

	for _, s := range evicted {
		s.Auth.Close()
	}
	if len(evicted) > 0 {
		r.log.Info("idle sessions evicted", zap.Int("evicted", len(evicted)), zap.Int("sessions", left))
	}
	return len(evicted)
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || r.ttl <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Sweep(r.now())
		}
	}
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close logs off every session and rejects further CreateOrResume calls.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	all := make([]*Session, 0, len(r.sessions))
	for key, s := range r.sessions {
		all = append(all, s)
		delete(r.sessions, key)
	}
	r.mu.Unlock()

	for _, s := range all {
		s.Auth.Close()
	}
}
