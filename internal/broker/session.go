package broker

import (
	"sync"
	"time"

	"github.com/and161185/im-relay/internal/model"
)

// Session is one relay-side login: its auth bridge, the user cache the bridge
// feeds, and bookkeeping for idle eviction.
type Session struct {
	Key   model.SessionKey
	Auth  *AuthBridge
	Users *UserCache

	created time.Time
	now     func() time.Time

	mu         sync.Mutex
	lastActive time.Time
	streams    int
}

// Created returns when the session was registered.
func (s *Session) Created() time.Time { return s.created }

// Touch records activity.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastActive = s.now()
	s.mu.Unlock()
}

// Acquire marks the session busy until release is called, e.g. for the
// lifetime of a message stream. Busy sessions are never swept.
func (s *Session) Acquire() (release func()) {
	s.mu.Lock()
	s.streams++
	s.lastActive = s.now()
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.streams--
			s.lastActive = s.now()
			s.mu.Unlock()
		})
	}
}

// Streams returns the number of outstanding Acquire holders.
func (s *Session) Streams() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streams
}

// LastActive returns the time of the latest recorded activity.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) idle(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streams == 0 && s.lastActive.Before(cutoff)
}
