package broker

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/and161185/im-relay/internal/errs"
	"github.com/and161185/im-relay/internal/model"
)

// UserCache reconciles partial persona deltas into a complete per-user view.
// Fields absent from a delta keep their previous value.
type UserCache struct {
	mu     sync.RWMutex
	users  map[string]*model.User
	now    func() time.Time
	loaded chan struct{}
	once   sync.Once
}

// NewUserCache returns an empty cache whose catalog is not loaded yet.
func NewUserCache() *UserCache {
	return &UserCache{
		users:  make(map[string]*model.User),
		now:    time.Now,
		loaded: make(chan struct{}),
	}
}

// Merge applies a delta to the entry for id, creating it if needed.
func (c *UserCache) Merge(id string, d model.UserDelta) {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, ok := c.users[id]
	if !ok {
		u = &model.User{ID: id, State: model.PersonaUnknown}
		c.users[id] = u
	}
	if d.Name != nil {
		u.Name = *d.Name
	}
	if d.State != nil {
		u.State = *d.State
	}
	if d.Avatar != nil {
		u.Avatar = *d.Avatar
	}
	if d.GameID != nil {
		u.GameID = *d.GameID
	}
	if d.GameName != nil {
		u.GameName = *d.GameName
	}
	if d.LastLogon != nil {
		u.LastLogon = *d.LastLogon
	}
	if d.LastLogoff != nil {
		u.LastLogoff = *d.LastLogoff
	}
	if d.LastSeenOnline != nil {
		u.LastSeenOnline = *d.LastSeenOnline
	}
	u.UpdatedAt = c.now()
}

// Get returns a copy of the entry for id.
func (c *UserCache) Get(id string) (model.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u, ok := c.users[id]
	if !ok {
		return model.User{}, false
	}
	return *u, true
}

// Len returns the number of known users.
func (c *UserCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}

// MarkLoaded signals that the friends catalog has been delivered.
func (c *UserCache) MarkLoaded() {
	c.once.Do(func() { close(c.loaded) })
}

// Loaded reports whether MarkLoaded was called.
func (c *UserCache) Loaded() bool {
	select {
	case <-c.loaded:
		return true
	default:
		return false
	}
}

// WaitLoaded blocks until the catalog is loaded, wait elapses or ctx ends.
func (c *UserCache) WaitLoaded(ctx context.Context, wait time.Duration) error {
	if c.Loaded() {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-c.loaded:
		return nil
	case <-timer.C:
		return errs.ErrFriendsNotLoaded
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot waits for the catalog and builds the friends list for selfID.
// Users without an entry yet appear with their id only and unknown presence.
func (c *UserCache) Snapshot(ctx context.Context, selfID string, relationships map[string]model.Relationship, wait time.Duration) (model.FriendsList, error) {
	if err := c.WaitLoaded(ctx, wait); err != nil {
		return model.FriendsList{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	persona := func(id string, rel model.Relationship) model.Persona {
		if u, ok := c.users[id]; ok {
			return model.Persona{User: *u, Relationship: rel}
		}
		return model.Persona{User: model.User{ID: id, State: model.PersonaUnknown}, Relationship: rel}
	}

	out := model.FriendsList{
		Self:    persona(selfID, model.RelationshipNone),
		Friends: make([]model.Persona, 0, len(relationships)),
	}
	for id, rel := range relationships {
		if id == selfID {
			continue
		}
		out.Friends = append(out.Friends, persona(id, rel))
	}
	sort.Slice(out.Friends, func(i, j int) bool {
		a, b := strings.ToLower(out.Friends[i].Name), strings.ToLower(out.Friends[j].Name)
		if a != b {
			return a < b
		}
		return out.Friends[i].ID < out.Friends[j].ID
	})
	return out, nil
}
