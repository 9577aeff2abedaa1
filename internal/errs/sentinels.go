// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across broker/service/server layers.
var (
	// ErrSessionNotFound indicates an unknown session key was supplied to an operation
	// that requires an existing session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotLoggedOn indicates the session exists but has no logged-on connection.
	ErrNotLoggedOn = errors.New("session not logged on")

	// ErrSessionFailed indicates the session reached the terminal failed state.
	ErrSessionFailed = errors.New("session failed")

	// ErrFriendsNotLoaded indicates the friends catalog did not load within the bound.
	ErrFriendsNotLoaded = errors.New("friends list not loaded")

	// ErrInvalidCredentials indicates a wrong password, guard code or refresh credential.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrInvalidTarget indicates a malformed or unknown target account id.
	ErrInvalidTarget = errors.New("invalid target id")

	// ErrInvalidMessage indicates an empty or oversized chat message body.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrInvalidArgument indicates a request that is missing required fields.
	ErrInvalidArgument = errors.New("invalid argument")
)
