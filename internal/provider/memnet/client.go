package memnet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/and161185/im-relay/internal/model"
	"github.com/and161185/im-relay/internal/provider"
)

var errAlreadyStarted = errors.New("memnet: client already logging on")

type clientState int

const (
	clientIdle clientState = iota
	clientLoggingOn
	clientLoggedOn
	clientClosed
)

// Client is a connection of one account to the network. Events are delivered
// in order on the client's own goroutine.
type Client struct {
	net *Network
	h   provider.ClientHandler
	d   *dispatcher

	mu        sync.Mutex
	state     clientState
	acc       *account
	listeners map[int]func(model.ChatMessage)
	nextID    int

	done      chan struct{}
	closeOnce sync.Once
}

var _ provider.Client = (*Client)(nil)

// LogOn implements provider.Client.
func (c *Client) LogOn(ctx context.Context, refreshToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	acc, claims, err := c.net.verifyRefresh(refreshToken)
	if err != nil {
		return err
	}

	c.mu.Lock()
	switch c.state {
	case clientIdle:
	case clientClosed:
		c.mu.Unlock()
		return provider.ErrNotLoggedOn
	default:
		c.mu.Unlock()
		return errAlreadyStarted
	}
	c.state = clientLoggingOn
	c.acc = acc
	c.mu.Unlock()

	var renewed string
	if c.net.renewalDue(claims) {
		tokens, err := c.net.issueTokens(acc)
		if err != nil {
			return err
		}
		renewed = tokens.RefreshToken
	}

	c.d.post(func() { c.finishLogOn(acc, renewed) })
	return nil
}

func (c *Client) finishLogOn(acc *account, renewed string) {
	c.mu.Lock()
	if c.state != clientLoggingOn {
		c.mu.Unlock()
		return
	}
	c.state = clientLoggedOn
	c.net.mu.Lock()
	acc.lastLogon = c.net.now()
	c.net.mu.Unlock()
	first := c.net.setOnline(c, acc.id, true)
	c.mu.Unlock()
	c.net.log.Info("client logged on", zap.String("account", acc.name))

	c.h.OnLoggedOn(acc.id)
	if renewed != "" {
		c.h.OnRefreshToken(renewed)
	}
	for _, d := range c.net.presence(acc) {
		c.h.OnUserUpdated(acc.id, d)
	}
	for id := range acc.friends {
		for _, d := range c.net.presence(c.net.byID[id]) {
			c.h.OnUserUpdated(id, d)
		}
	}
	c.h.OnFriendsListLoaded()

	if first {
		c.net.announce(acc)
	}
}

// announce sends acc's current presence to the logged-on clients of its friends.
func (n *Network) announce(acc *account) {
	deltas := n.presence(acc)
	for id := range acc.friends {
		for _, fc := range n.clientsOf(id) {
			fc := fc
			fc.d.post(func() {
				for _, d := range deltas {
					fc.h.OnUserUpdated(acc.id, d)
				}
			})
		}
	}
}

// LogOff implements provider.Client.
func (c *Client) LogOff() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		wasOn := c.state == clientLoggedOn
		acc := c.acc
		c.state = clientClosed
		clear(c.listeners)
		last := false
		if wasOn {
			c.net.mu.Lock()
			acc.lastOff = c.net.now()
			c.net.mu.Unlock()
			last = c.net.setOnline(c, acc.id, false)
		}
		c.mu.Unlock()

		c.d.stop()
		close(c.done)
		if !wasOn {
			return
		}
		if last {
			c.net.announce(acc)
		}
		c.net.log.Info("client logged off", zap.String("account", acc.name))
	})
}

// Done implements provider.Client.
func (c *Client) Done() <-chan struct{} { return c.done }

func (c *Client) self() (*account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != clientLoggedOn {
		return nil, provider.ErrNotLoggedOn
	}
	return c.acc, nil
}

func (c *Client) target(id string) (*account, error) {
	acc, ok := c.net.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", provider.ErrUnknownTarget, id)
	}
	return acc, nil
}

// SendMessage implements provider.Client.
func (c *Client) SendMessage(ctx context.Context, targetID, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	me, err := c.self()
	if err != nil {
		return err
	}
	to, err := c.target(targetID)
	if err != nil {
		return err
	}
	if !utf8.ValidString(body) {
		return errors.New("memnet: message is not valid UTF-8")
	}
	m := c.net.appendMessage(me.id, to.id, body)
	for _, rc := range c.net.clientsOf(to.id) {
		rc.deliver(m)
	}
	return nil
}

func (c *Client) deliver(m model.ChatMessage) {
	c.d.post(func() {
		c.mu.Lock()
		fns := make([]func(model.ChatMessage), 0, len(c.listeners))
		for _, fn := range c.listeners {
			fns = append(fns, fn)
		}
		c.mu.Unlock()
		for _, fn := range fns {
			fn(m)
		}
	})
}

// MessageHistory implements provider.Client.
func (c *Client) MessageHistory(ctx context.Context, targetID string, q model.HistoryQuery) (model.HistoryPage, error) {
	if err := ctx.Err(); err != nil {
		return model.HistoryPage{}, err
	}
	me, err := c.self()
	if err != nil {
		return model.HistoryPage{}, err
	}
	to, err := c.target(targetID)
	if err != nil {
		return model.HistoryPage{}, err
	}
	return c.net.history(me.id, to.id, q), nil
}

// FriendRelationships implements provider.Client.
func (c *Client) FriendRelationships() map[string]model.Relationship {
	me, err := c.self()
	if err != nil {
		return map[string]model.Relationship{}
	}
	out := make(map[string]model.Relationship, len(me.friends))
	for id := range me.friends {
		out[id] = model.RelationshipFriend
	}
	return out
}

// ActiveSessions implements provider.Client.
func (c *Client) ActiveSessions(ctx context.Context, since time.Time) (model.ActiveSessions, error) {
	if err := ctx.Err(); err != nil {
		return model.ActiveSessions{}, err
	}
	me, err := c.self()
	if err != nil {
		return model.ActiveSessions{}, err
	}
	return model.ActiveSessions{
		Sessions:  c.net.activeSessions(me.id, since),
		Timestamp: c.net.now(),
	}, nil
}

// AckMessage implements provider.Client.
func (c *Client) AckMessage(ctx context.Context, targetID string, ts time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	me, err := c.self()
	if err != nil {
		return err
	}
	to, err := c.target(targetID)
	if err != nil {
		return err
	}
	c.net.ack(me.id, to.id, ts)
	return nil
}

// OnFriendMessage implements provider.Client.
func (c *Client) OnFriendMessage(fn func(model.ChatMessage)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == clientClosed {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Listeners returns the number of registered message listeners.
func (c *Client) Listeners() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}
