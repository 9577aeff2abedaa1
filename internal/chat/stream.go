package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/im-relay/internal/model"
)

// Stream errors.
var (
	// ErrConnectionClosed ends a stream whose network connection went away.
	ErrConnectionClosed = errors.New("connection closed")
	// ErrStreamClosed is returned by Next after Close.
	ErrStreamClosed = errors.New("stream closed")
)

// Stream defaults.
const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultQueueLimit   = 1024
)

// MessageSource pushes incoming messages of one logged-on connection.
type MessageSource interface {
	OnFriendMessage(fn func(model.ChatMessage)) (remove func())
	Done() <-chan struct{}
}

// StreamConfig bounds a Stream.
type StreamConfig struct {
	// PollInterval bounds each wait in Next so closure is noticed promptly.
	PollInterval time.Duration
	// QueueLimit caps buffered messages; the oldest is dropped on overflow.
	QueueLimit int
	Logger     *zap.Logger
}

// Stream buffers messages pushed by a MessageSource in arrival order.
type Stream struct {
	interval time.Duration
	limit    int
	log      *zap.Logger

	remove func()
	done   <-chan struct{}
	notify chan struct{}

	closeOnce sync.Once
	closed    chan struct{}

	mu      sync.Mutex
	queue   []model.ChatMessage
	dropped int
	stopped bool
}

// Subscribe registers a listener on src. The listener stays registered until
// Close.
func Subscribe(src MessageSource, cfg StreamConfig) *Stream {
	s := &Stream{
		interval: cfg.PollInterval,
		limit:    cfg.QueueLimit,
		log:      cfg.Logger,
		done:     src.Done(),
		notify:   make(chan struct{}, 1),
		closed:   make(chan struct{}),
	}
	if s.interval <= 0 {
		s.interval = DefaultPollInterval
	}
	if s.limit <= 0 {
		s.limit = DefaultQueueLimit
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.remove = src.OnFriendMessage(s.push)
	return s
}

func (s *Stream) push(m model.ChatMessage) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	if len(s.queue) >= s.limit {
		s.queue = s.queue[1:]
		s.dropped++
		if s.dropped == 1 || s.dropped%100 == 0 {
			s.log.Warn("stream queue full; dropping oldest message", zap.Int("dropped", s.dropped))
		}
	}
	s.queue = append(s.queue, m)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *Stream) pop() (model.ChatMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return model.ChatMessage{}, false
	}
	m := s.queue[0]
	s.queue[0] = model.ChatMessage{}
	s.queue = s.queue[1:]
	return m, true
}

// Next returns the oldest buffered message, waiting for one if needed. Once
// the connection is closed, buffered messages are still returned before
// ErrConnectionClosed. A done ctx ends Next even with messages buffered.
func (s *Stream) Next(ctx context.Context) (model.ChatMessage, error) {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return model.ChatMessage{}, err
		}
		select {
		case <-s.closed:
			return model.ChatMessage{}, ErrStreamClosed
		default:
		}
		if m, ok := s.pop(); ok {
			return m, nil
		}

		select {
		case <-ctx.Done():
			return model.ChatMessage{}, ctx.Err()
		case <-s.closed:
			return model.ChatMessage{}, ErrStreamClosed
		case <-s.done:
			if m, ok := s.pop(); ok {
				return m, nil
			}
			return model.ChatMessage{}, ErrConnectionClosed
		case <-s.notify:
		case <-timer.C:
			timer.Reset(s.interval)
		}
	}
}

// Buffered returns the number of queued messages.
func (s *Stream) Buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Dropped returns how many messages were discarded on overflow.
func (s *Stream) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Close deregisters the listener and discards buffered messages. It is safe
// to call more than once.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		s.remove()
		s.mu.Lock()
		s.stopped = true
		s.queue = nil
		s.mu.Unlock()
		close(s.closed)
	})
}

// Serve subscribes to src and hands every message to send until ctx ends,
// the connection closes or send fails. The listener is removed before Serve
// returns.
func Serve(ctx context.Context, src MessageSource, cfg StreamConfig, send func(model.ChatMessage) error) error {
	s := Subscribe(src, cfg)
	defer s.Close()
	for {
		m, err := s.Next(ctx)
		if err != nil {
			return err
		}
		if err := send(m); err != nil {
			return err
		}
	}
}
