// Package model defines domain entities used by the broker, services and transports.
package model

import (
	"time"
)

// SessionKey is the opaque identifier of one login attempt and its connection.
type SessionKey string

// Short returns a prefix of the key suitable for logs.
func (k SessionKey) Short() string {
	if len(k) > 8 {
		return string(k[:8])
	}
	return string(k)
}

// AuthState is the position of a session's login state machine.
type AuthState int

// Login states. Failed is terminal.
const (
	StateCreated AuthState = iota
	StateAwaitingChallenge
	StateAwaitingTokenConfirmation
	StateLoggedOn
	StateFailed
)

func (s AuthState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateAwaitingChallenge:
		return "awaiting_challenge"
	case StateAwaitingTokenConfirmation:
		return "awaiting_token_confirmation"
	case StateLoggedOn:
		return "logged_on"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AuthReason is the outcome reported to an Authenticate caller.
type AuthReason int

// Authenticate outcomes.
const (
	ReasonUnknownError AuthReason = iota
	ReasonSuccess
	ReasonChallengeRequired
	ReasonInvalidCredentials
)

func (r AuthReason) String() string {
	switch r {
	case ReasonSuccess:
		return "success"
	case ReasonChallengeRequired:
		return "challenge_required"
	case ReasonInvalidCredentials:
		return "invalid_credentials"
	default:
		return "unknown_error"
	}
}

// ChallengeType is a second-factor action the network accepts for a login.
type ChallengeType int

// Guard actions. Code types expect an answer; confirmation types are approved out of band.
const (
	ChallengeNone ChallengeType = iota
	ChallengeEmailCode
	ChallengeDeviceCode
	ChallengeEmailConfirmation
	ChallengeDeviceConfirmation
)

// NeedsCode reports whether the challenge is answered by submitting a code.
func (c ChallengeType) NeedsCode() bool {
	return c == ChallengeEmailCode || c == ChallengeDeviceCode
}

// Challenge is one guard action with an optional hint (e.g. masked e-mail domain).
type Challenge struct {
	Type   ChallengeType
	Detail string
}

// AuthResult is what one Authenticate call receives from the session's result slot.
type AuthResult struct {
	Reason       AuthReason
	SessionKey   SessionKey
	RefreshToken string      // set on success when a credential was issued or renewed
	Challenges   []Challenge // set with ReasonChallengeRequired
	Err          error       // cause for failures (diagnostics only)
}

// Succeeded reports whether the result carries a logged-on session.
func (r AuthResult) Succeeded() bool { return r.Reason == ReasonSuccess }

// PersonaState is the presence of a user. Values follow the network's numbering.
type PersonaState int

// Presence values; PersonaUnknown is used until the first delta arrives.
const (
	PersonaOffline PersonaState = iota
	PersonaOnline
	PersonaBusy
	PersonaAway
	PersonaSnooze
	PersonaLookingToTrade
	PersonaLookingToPlay
	PersonaInvisible
	PersonaUnknown
)

// Relationship is how a user relates to the logged-on account.
type Relationship int

// Relationship values follow the network's numbering.
const (
	RelationshipNone Relationship = iota
	RelationshipBlocked
	RelationshipRequestRecipient
	RelationshipFriend
	RelationshipRequestInitiator
	RelationshipIgnored
	RelationshipIgnoredFriend
)

// Avatar holds the three sizes of a user's avatar.
type Avatar struct {
	Icon   string
	Medium string
	Full   string
}

// UserDelta is a partial profile/presence update. Nil fields are unknown, not cleared.
type UserDelta struct {
	Name           *string
	State          *PersonaState
	Avatar         *Avatar
	GameID         *uint64
	GameName       *string
	LastLogon      *time.Time
	LastLogoff     *time.Time
	LastSeenOnline *time.Time
}

// User is the reconciled view of one remote user.
type User struct {
	ID             string
	Name           string
	State          PersonaState
	Avatar         Avatar
	GameID         uint64
	GameName       string
	LastLogon      time.Time
	LastLogoff     time.Time
	LastSeenOnline time.Time
	UpdatedAt      time.Time
}

// Persona is a user as exposed by the friends list.
type Persona struct {
	User
	Relationship Relationship
}

// FriendsList is the logged-on user plus their contacts.
type FriendsList struct {
	Self    Persona
	Friends []Persona
}

// ChatMessage is one immutable message in a one-to-one conversation.
type ChatMessage struct {
	SenderID  string
	Body      string
	Timestamp time.Time
}

// HistoryQuery asks for one page of history, newest first.
type HistoryQuery struct {
	Start    time.Time // oldest timestamp of interest (inclusive)
	Before   time.Time // watermark: newest timestamp of interest (inclusive)
	MaxCount int
}

// HistoryPage is one page of history as the network returns it.
type HistoryPage struct {
	Messages      []ChatMessage
	MoreAvailable bool
}

// ActiveSession summarises one conversation with recent activity.
type ActiveSession struct {
	TargetID    string
	LastMessage time.Time
	LastView    time.Time
	Unread      int
}

// ActiveSessions is the list of recent conversations plus the server time it was taken at.
type ActiveSessions struct {
	Sessions  []ActiveSession
	Timestamp time.Time
}
