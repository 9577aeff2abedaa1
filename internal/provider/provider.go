// Package provider declares the boundary to the external messaging network:
// the login session that issues credentials and the connected chat client.
//
// Implementations deliver events by calling handler methods, possibly from their
// own goroutines. Handlers must not block for long and must not call back into a
// Login or Client while holding locks the implementation may need.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/and161185/im-relay/internal/model"
)

// Errors reported by implementations.
var (
	// ErrInvalidPassword is returned by BeginLogin for a wrong account name or password.
	ErrInvalidPassword = errors.New("provider: invalid password")
	// ErrCodeMismatch is returned by SubmitCode for a wrong guard code. The login stays open.
	ErrCodeMismatch = errors.New("provider: guard code mismatch")
	// ErrAccessDenied is returned by LogOn for a rejected refresh credential.
	ErrAccessDenied = errors.New("provider: access denied")
	// ErrNotLoggedOn is returned by client operations before LogOn completes or after LogOff.
	ErrNotLoggedOn = errors.New("provider: not logged on")
	// ErrUnknownTarget is returned when a message target does not exist.
	ErrUnknownTarget = errors.New("provider: unknown target")
	// ErrLoginTimeout is the error passed to LoginHandler.OnTimeout consumers.
	ErrLoginTimeout = errors.New("provider: login attempt timed out")
)

// Tokens are the credentials issued once a login is authenticated.
type Tokens struct {
	AccountName  string
	AccessToken  string
	RefreshToken string
}

// LoginHandler receives the events of one login attempt.
type LoginHandler interface {
	// OnChallenge reports that the login needs a second factor.
	OnChallenge(challenges []model.Challenge)
	// OnAuthenticated reports issued credentials. No further events follow.
	OnAuthenticated(tokens Tokens)
	// OnTimeout reports that the attempt expired.
	OnTimeout()
	// OnError reports a transport or network failure.
	OnError(err error)
}

// Login is an in-progress login attempt.
type Login interface {
	// SubmitCode answers a code challenge. ErrCodeMismatch leaves the attempt open.
	SubmitCode(ctx context.Context, code string) error
	// Cancel abandons the attempt. No events are delivered afterwards.
	Cancel()
}

// ClientHandler receives the events of one connected client.
type ClientHandler interface {
	// OnLoggedOn reports the connection is usable; selfID is the account id.
	OnLoggedOn(selfID string)
	// OnRefreshToken reports a newly issued or renewed refresh credential.
	OnRefreshToken(token string)
	// OnUserUpdated delivers a partial persona update.
	OnUserUpdated(id string, delta model.UserDelta)
	// OnFriendsListLoaded reports that the relationship catalog is complete.
	OnFriendsListLoaded()
	// OnError reports a fatal connection error. The client is unusable afterwards.
	OnError(err error)
}

// Client is a connection to the messaging network for one account.
type Client interface {
	// LogOn starts logging on with a refresh credential. Completion is reported
	// through ClientHandler.OnLoggedOn or ClientHandler.OnError.
	LogOn(ctx context.Context, refreshToken string) error
	// LogOff disconnects. It is safe to call more than once.
	LogOff()
	// Done is closed once the client is disconnected.
	Done() <-chan struct{}

	SendMessage(ctx context.Context, targetID, body string) error
	MessageHistory(ctx context.Context, targetID string, q model.HistoryQuery) (model.HistoryPage, error)
	FriendRelationships() map[string]model.Relationship
	ActiveSessions(ctx context.Context, since time.Time) (model.ActiveSessions, error)
	AckMessage(ctx context.Context, targetID string, ts time.Time) error

	// OnFriendMessage registers a listener for incoming messages and returns
	// the function that removes it.
	OnFriendMessage(fn func(model.ChatMessage)) (remove func())
}

// Provider opens logins and clients against one messaging network.
type Provider interface {
	// BeginLogin starts a password login. Events go to h.
	BeginLogin(ctx context.Context, accountName, password string, h LoginHandler) (Login, error)
	// NewClient creates a disconnected client whose events go to h.
	NewClient(h ClientHandler) Client
}
