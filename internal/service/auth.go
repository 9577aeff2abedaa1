// Package service contains the application services behind the relay RPCs:
// session authentication and the message operations of logged-on sessions.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/im-relay/internal/broker"
	"github.com/and161185/im-relay/internal/errs"
	"github.com/and161185/im-relay/internal/limiter"
	"github.com/and161185/im-relay/internal/model"
)

// AuthRequest is one Authenticate call. An empty or unknown SessionKey starts
// a new session; otherwise the call resumes that session.
type AuthRequest struct {
	SessionKey   model.SessionKey
	Username     string
	Password     string
	RefreshToken string
	Code         string
	// PeerIP keys the login limiter together with the account name.
	PeerIP string
}

// AuthService defines session authentication operations.
type AuthService interface {
	// Authenticate creates or resumes a session and advances its login.
	Authenticate(ctx context.Context, req AuthRequest) (model.AuthResult, error)
	// LogOff disconnects a session and forgets its key.
	LogOff(ctx context.Context, key model.SessionKey) error
}

type AuthServiceImpl struct {
	reg *broker.Registry
	lim limiter.Limiter
	log *zap.Logger
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(reg *broker.Registry, lim limiter.Limiter, log *zap.Logger) *AuthServiceImpl {
	if lim == nil {
		lim = limiter.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthServiceImpl{reg: reg, lim: lim, log: log}
}

// Authenticate applies rate limiting to password logins and guard codes,
// then hands the call to the session's auth bridge.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, req AuthRequest) (model.AuthResult, error) {
	var limited string // account name the limiter is consulted for
	ipHash := limiter.HashIP(req.PeerIP)

	resume := false
	if req.SessionKey != "" {
		_, err := s.reg.Get(req.SessionKey)
		resume = err == nil
	}
	if !resume {
		// Unknown keys start a new login, which needs credentials.
		if req.RefreshToken == "" && (req.Username == "" || req.Password == "") {
			return model.AuthResult{}, fmt.Errorf("%w: username and password or refresh token required", errs.ErrInvalidArgument)
		}
		if req.Password != "" {
			limited = req.Username
			if err := s.allow(ctx, limited, ipHash); err != nil {
				return model.AuthResult{}, err
			}
		}
	}

	key, sess, isNew, err := s.reg.CreateOrResume(req.SessionKey)
	if err != nil {
		return model.AuthResult{}, err
	}
	if isNew && req.SessionKey != "" {
		s.log.Info("unknown session key; starting a new session", zap.String("session", key.Short()))
	}
	if !isNew && req.Code != "" {
		limited = sess.Auth.Username()
		if err := s.allow(ctx, limited, ipHash); err != nil {
			return model.AuthResult{}, err
		}
	}

	res, err := sess.Auth.Authenticate(ctx, broker.AuthInput{
		Username:     req.Username,
		Password:     req.Password,
		RefreshToken: req.RefreshToken,
		Code:         req.Code,
	})
	if err != nil {
		return model.AuthResult{}, err
	}
	res.SessionKey = key

	if limited != "" {
		s.record(ctx, limited, ipHash, res.Reason)
	}
	return res, nil
}

func (s *AuthServiceImpl) allow(ctx context.Context, username string, ipHash []byte) error {
	ok, retry, err := s.lim.Allow(ctx, username, ipHash)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: retry in %s", errs.ErrRateLimited, retry.Round(time.Second))
	}
	return nil
}

// record feeds the outcome to the limiter. Limiter errors are logged only.
func (s *AuthServiceImpl) record(ctx context.Context, username string, ipHash []byte, reason model.AuthReason) {
	switch reason {
	case model.ReasonInvalidCredentials:
		blocked, until, err := s.lim.Failure(ctx, username, ipHash)
		if err != nil {
			s.log.Warn("limiter failure", zap.Error(err))
			return
		}
		if blocked {
			s.log.Warn("login blocked", zap.String("account", username), zap.Duration("for", until))
		}
	case model.ReasonSuccess:
		if err := s.lim.Success(ctx, username, ipHash); err != nil {
			s.log.Warn("limiter success", zap.Error(err))
		}
	}
}

// LogOff removes the session. Unknown keys are ErrSessionNotFound.
func (s *AuthServiceImpl) LogOff(_ context.Context, key model.SessionKey) error {
	if key == "" {
		return fmt.Errorf("%w: session key required", errs.ErrInvalidArgument)
	}
	if !s.reg.Remove(key) {
		return errs.ErrSessionNotFound
	}
	return nil
}
