package memnet

import (
	"sort"
	"time"

	"github.com/and161185/im-relay/internal/model"
)

type convKey struct{ a, b string }

func keyOf(x, y string) convKey {
	if x > y {
		x, y = y, x
	}
	return convKey{a: x, b: y}
}

// conversation holds messages in ascending timestamp order and, per
// participant, the newest timestamp they acknowledged.
type conversation struct {
	msgs  []model.ChatMessage
	views map[string]time.Time
}

// stampLocked returns the clock reading, moved one nanosecond past the
// previous stamp when the clock has not advanced.
func (n *Network) stampLocked() time.Time {
	ts := n.now().Round(0)
	if !ts.After(n.lastStamp) {
		ts = n.lastStamp.Add(time.Nanosecond)
	}
	n.lastStamp = ts
	return ts
}

func (n *Network) appendMessage(from, to, body string) model.ChatMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	k := keyOf(from, to)
	c := n.convs[k]
	if c == nil {
		c = &conversation{views: make(map[string]time.Time)}
		n.convs[k] = c
	}
	m := model.ChatMessage{SenderID: from, Body: body, Timestamp: n.stampLocked()}
	c.msgs = append(c.msgs, m)
	return m
}

// history returns messages between self and other with Start <= ts <= Before,
// newest first, at most max of them.
func (n *Network) history(self, other string, q model.HistoryQuery) model.HistoryPage {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := n.convs[keyOf(self, other)]
	if c == nil {
		return model.HistoryPage{}
	}
	// Index of the first message newer than Before.
	hi := len(c.msgs)
	if !q.Before.IsZero() {
		hi = sort.Search(len(c.msgs), func(i int) bool { return c.msgs[i].Timestamp.After(q.Before) })
	}
	lo := sort.Search(hi, func(i int) bool { return !c.msgs[i].Timestamp.Before(q.Start) })

	var page model.HistoryPage
	for i := hi - 1; i >= lo; i-- {
		if q.MaxCount > 0 && len(page.Messages) == q.MaxCount {
			page.MoreAvailable = true
			break
		}
		page.Messages = append(page.Messages, c.msgs[i])
	}
	return page
}

func (n *Network) activeSessions(self string, since time.Time) []model.ActiveSession {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []model.ActiveSession
	for k, c := range n.convs {
		other := k.a
		if other == self {
			other = k.b
		} else if k.b != self {
			continue
		}
		if len(c.msgs) == 0 {
			continue
		}
		last := c.msgs[len(c.msgs)-1].Timestamp
		if last.Before(since) {
			continue
		}
		view := c.views[self]
		unread := 0
		for i := len(c.msgs) - 1; i >= 0 && c.msgs[i].Timestamp.After(view); i-- {
			if c.msgs[i].SenderID == other {
				unread++
			}
		}
		out = append(out, model.ActiveSession{TargetID: other, LastMessage: last, LastView: view, Unread: unread})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessage.After(out[j].LastMessage) })
	return out
}

func (n *Network) ack(self, other string, ts time.Time) {
	n.mu.Lock()
	defer n.mu.Unlock()
	k := keyOf(self, other)
	c := n.convs[k]
	if c == nil {
		c = &conversation{views: make(map[string]time.Time)}
		n.convs[k] = c
	}
	if ts.After(c.views[self]) {
		c.views[self] = ts
	}
}
