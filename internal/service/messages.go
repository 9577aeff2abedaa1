package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/and161185/im-relay/internal/broker"
	"github.com/and161185/im-relay/internal/chat"
	"github.com/and161185/im-relay/internal/errs"
	"github.com/and161185/im-relay/internal/model"
	"github.com/and161185/im-relay/internal/provider"
)

// Defaults for MessageConfig.
const (
	DefaultMaxMessageLen = 5000
	DefaultFriendsWait   = 10 * time.Second
)

// MessageService defines the operations of a logged-on session.
type MessageService interface {
	Send(ctx context.Context, key model.SessionKey, target, body string) error
	Poll(ctx context.Context, key model.SessionKey, target string, start, last time.Time) ([]model.ChatMessage, error)
	Stream(ctx context.Context, key model.SessionKey, send func(model.ChatMessage) error) error
	ActiveSessions(ctx context.Context, key model.SessionKey, since time.Time) (model.ActiveSessions, error)
	Ack(ctx context.Context, key model.SessionKey, target string, ts time.Time) error
	FriendsList(ctx context.Context, key model.SessionKey) (model.FriendsList, error)
}

// MessageConfig configures MessageServiceImpl. Zero values take defaults.
type MessageConfig struct {
	History       *chat.Aggregator
	Stream        chat.StreamConfig
	FriendsWait   time.Duration
	MaxMessageLen int
	Logger        *zap.Logger
}

type MessageServiceImpl struct {
	reg         *broker.Registry
	history     *chat.Aggregator
	stream      chat.StreamConfig
	friendsWait time.Duration
	maxLen      int
	log         *zap.Logger
}

// NewMessageService constructs MessageService over the session registry.
func NewMessageService(reg *broker.Registry, cfg MessageConfig) *MessageServiceImpl {
	s := &MessageServiceImpl{
		reg:         reg,
		history:     cfg.History,
		stream:      cfg.Stream,
		friendsWait: cfg.FriendsWait,
		maxLen:      cfg.MaxMessageLen,
		log:         cfg.Logger,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.history == nil {
		s.history = chat.NewAggregator(s.log)
	}
	if s.stream.Logger == nil {
		s.stream.Logger = s.log
	}
	if s.friendsWait <= 0 {
		s.friendsWait = DefaultFriendsWait
	}
	if s.maxLen <= 0 {
		s.maxLen = DefaultMaxMessageLen
	}
	return s
}

// connection resolves key to its session and logged-on client.
func (s *MessageServiceImpl) connection(key model.SessionKey) (*broker.Session, provider.Client, string, error) {
	sess, err := s.reg.Get(key)
	if err != nil {
		return nil, nil, "", err
	}
	client, self, err := sess.Auth.Connection()
	if err != nil {
		return nil, nil, "", err
	}
	return sess, client, self, nil
}

func validTarget(target string) error {
	if _, err := strconv.ParseUint(target, 10, 64); err != nil {
		return fmt.Errorf("%w: %q", errs.ErrInvalidTarget, target)
	}
	return nil
}

// targetErr maps the network's unknown-target error to ErrInvalidTarget.
func targetErr(err error) error {
	if errors.Is(err, provider.ErrUnknownTarget) {
		return fmt.Errorf("%w: %w", errs.ErrInvalidTarget, err)
	}
	return err
}

// Send delivers body to target. The session is checked before the input.
func (s *MessageServiceImpl) Send(ctx context.Context, key model.SessionKey, target, body string) error {
	_, client, _, err := s.connection(key)
	if err != nil {
		return err
	}
	if err := validTarget(target); err != nil {
		return err
	}
	if body == "" || !utf8.ValidString(body) || utf8.RuneCountInString(body) > s.maxLen {
		return fmt.Errorf("%w: empty, malformed or longer than %d characters", errs.ErrInvalidMessage, s.maxLen)
	}
	return targetErr(client.SendMessage(ctx, target, body))
}

// Poll returns the history with target between start and last, oldest first.
func (s *MessageServiceImpl) Poll(ctx context.Context, key model.SessionKey, target string, start, last time.Time) ([]model.ChatMessage, error) {
	_, client, _, err := s.connection(key)
	if err != nil {
		return nil, err
	}
	if err := validTarget(target); err != nil {
		return nil, err
	}
	if !start.IsZero() && !last.IsZero() && last.Before(start) {
		return nil, fmt.Errorf("%w: last timestamp before start timestamp", errs.ErrInvalidArgument)
	}
	msgs, err := s.history.Fetch(ctx, client, target, start, last)
	if err != nil {
		return nil, targetErr(err)
	}
	return msgs, nil
}

// Stream hands incoming messages to send until ctx ends, the connection
// closes or send fails. The session is kept from eviction meanwhile.
func (s *MessageServiceImpl) Stream(ctx context.Context, key model.SessionKey, send func(model.ChatMessage) error) error {
	sess, client, _, err := s.connection(key)
	if err != nil {
		return err
	}
	release := sess.Acquire()
	defer release()

	s.log.Debug("stream opened", zap.String("session", key.Short()))
	err = chat.Serve(ctx, client, s.stream, send)
	s.log.Debug("stream closed", zap.String("session", key.Short()), zap.Error(err))
	return err
}

// ActiveSessions lists conversations with activity since the given time.
func (s *MessageServiceImpl) ActiveSessions(ctx context.Context, key model.SessionKey, since time.Time) (model.ActiveSessions, error) {
	_, client, _, err := s.connection(key)
	if err != nil {
		return model.ActiveSessions{}, err
	}
	return client.ActiveSessions(ctx, since)
}

// Ack marks the conversation with target as read up to ts.
func (s *MessageServiceImpl) Ack(ctx context.Context, key model.SessionKey, target string, ts time.Time) error {
	_, client, _, err := s.connection(key)
	if err != nil {
		return err
	}
	if err := validTarget(target); err != nil {
		return err
	}
	if ts.IsZero() {
		return fmt.Errorf("%w: timestamp required", errs.ErrInvalidArgument)
	}
	return targetErr(client.AckMessage(ctx, target, ts))
}

// FriendsList returns the session's account and its contacts once the
// network has delivered the relationship catalog.
func (s *MessageServiceImpl) FriendsList(ctx context.Context, key model.SessionKey) (model.FriendsList, error) {
	sess, client, self, err := s.connection(key)
	if err != nil {
		return model.FriendsList{}, err
	}
	return sess.Users.Snapshot(ctx, self, client.FriendRelationships(), s.friendsWait)
}
