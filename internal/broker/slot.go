package broker

import (
	"context"
	"sync"
)

// Slot hands one asynchronously produced result to the call currently waiting
// on a session. Every call installs its own Ticket; installing replaces the
// previous ticket, so results addressed to the slot only ever reach the newest
// waiter and a ticket is served at most once.
type Slot[T any] struct {
	mu  sync.Mutex
	cur *Ticket[T]
}

// Ticket is one call's claim on a Slot.
type Ticket[T any] struct {
	slot   *Slot[T]
	ch     chan T
	once   sync.Once
	served bool
}

// Install creates a fresh ticket and makes it the slot's current waiter.
func (s *Slot[T]) Install() *Ticket[T] {
	t := &Ticket[T]{slot: s, ch: make(chan T, 1)}
	s.mu.Lock()
	s.cur = t
	s.mu.Unlock()
	return t
}

// Resolve delivers v to the current waiter. It reports false when nobody is
// waiting or the waiter was already served; v is then dropped.
func (s *Slot[T]) Resolve(v T) bool {
	s.mu.Lock()
	t := s.cur
	s.mu.Unlock()
	if t == nil {
		return false
	}
	return t.Resolve(v)
}

// Waiting reports whether a ticket is installed and not yet served.
func (s *Slot[T]) Waiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur != nil && !s.cur.served
}

func (s *Slot[T]) release(t *Ticket[T]) {
	s.mu.Lock()
	if s.cur == t {
		s.cur = nil
	}
	s.mu.Unlock()
}

// Resolve delivers v to this ticket only. It reports false if the ticket was
// already served or abandoned.
func (t *Ticket[T]) Resolve(v T) bool {
	delivered := false
	t.once.Do(func() {
		t.slot.mu.Lock()
		t.served = true
		t.slot.mu.Unlock()
		t.ch <- v
		delivered = true
	})
	if delivered {
		t.slot.release(t)
	}
	return delivered
}

// Wait blocks until the ticket is resolved or ctx ends. On cancellation the
// ticket is abandoned: later results go to whichever ticket is installed next.
func (t *Ticket[T]) Wait(ctx context.Context) (T, error) {
	select {
	case v := <-t.ch:
		return v, nil
	case <-ctx.Done():
		t.abandon()
		// A result may have raced with the cancellation.
		select {
		case v := <-t.ch:
			return v, nil
		default:
		}
		var zero T
		return zero, ctx.Err()
	}
}

func (t *Ticket[T]) abandon() {
	t.once.Do(func() {
		t.slot.mu.Lock()
		t.served = true
		t.slot.mu.Unlock()
	})
	t.slot.release(t)
}
