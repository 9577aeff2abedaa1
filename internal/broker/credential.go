package broker

import (
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialPolicy decides whether a login must hold a refresh credential
// before it is reported as logged on.
type CredentialPolicy int

// Policies, from most to least permissive.
const (
	// CredentialOptional completes as soon as the connection is logged on.
	CredentialOptional CredentialPolicy = iota
	// CredentialIssued also requires a non-empty refresh credential.
	CredentialIssued
	// CredentialRenewable requires a refresh credential that is an unexpired
	// token whose audience includes "renew".
	CredentialRenewable
)

// renewAudience marks refresh tokens that can be exchanged for new sessions.
const renewAudience = "renew"

// ParseCredentialPolicy maps a config value to a policy.
func ParseCredentialPolicy(s string) (CredentialPolicy, error) {
	switch s {
	case "optional":
		return CredentialOptional, nil
	case "", "issued":
		return CredentialIssued, nil
	case "renewable":
		return CredentialRenewable, nil
	default:
		return 0, fmt.Errorf("unknown credential policy %q", s)
	}
}

func (p CredentialPolicy) String() string {
	switch p {
	case CredentialOptional:
		return "optional"
	case CredentialIssued:
		return "issued"
	case CredentialRenewable:
		return "renewable"
	default:
		return fmt.Sprintf("CredentialPolicy(%d)", int(p))
	}
}

// Accepts reports whether token satisfies the policy at now.
func (p CredentialPolicy) Accepts(token string, now time.Time) bool {
	switch p {
	case CredentialOptional:
		return true
	case CredentialIssued:
		return token != ""
	default:
		return InspectRefreshToken(token, now) == nil
	}
}

// InspectRefreshToken checks the claims of a refresh token without verifying
// its signature; the network that issued it is the one that verifies it.
func InspectRefreshToken(token string, now time.Time) error {
	if token == "" {
		return fmt.Errorf("empty refresh token")
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return fmt.Errorf("parse refresh token: %w", err)
	}
	if !slices.Contains(claims.Audience, renewAudience) {
		return fmt.Errorf("refresh token is not renewable (aud=%v)", []string(claims.Audience))
	}
	if claims.ExpiresAt == nil {
		return fmt.Errorf("refresh token has no expiry")
	}
	if !claims.ExpiresAt.After(now) {
		return fmt.Errorf("refresh token expired at %s", claims.ExpiresAt.Time.Format(time.RFC3339))
	}
	return nil
}

// RefreshTokenSubject returns the account id a refresh token was issued to.
func RefreshTokenSubject(token string) (string, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "", fmt.Errorf("parse refresh token: %w", err)
	}
	return claims.Subject, nil
}
