package memnet

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/im-relay/internal/model"
	"github.com/and161185/im-relay/internal/provider"
)

var errLoginFinished = errors.New("memnet: login already finished")

type login struct {
	net *Network
	acc *account
	h   provider.LoginHandler
	d   *dispatcher

	mu       sync.Mutex
	finished bool
	timer    *time.Timer
}

var _ provider.Login = (*login)(nil)

func (n *Network) startLogin(acc *account, h provider.LoginHandler) *login {
	l := &login{net: n, acc: acc, h: h, d: newDispatcher()}

	if acc.guard == model.ChallengeNone {
		l.complete()
		return l
	}

	n.mu.Lock()
	n.pending[acc.name] = l
	n.mu.Unlock()

	ch := model.Challenge{Type: acc.guard}
	if acc.guard == model.ChallengeEmailCode || acc.guard == model.ChallengeEmailConfirmation {
		ch.Detail = emailDomain(acc.email)
	}
	l.mu.Lock()
	l.timer = time.AfterFunc(n.loginTimeout, l.expire)
	l.mu.Unlock()
	l.d.post(func() { h.OnChallenge([]model.Challenge{ch}) })
	n.log.Debug("login challenged", zap.String("account", acc.name), zap.Int("guard", int(acc.guard)))
	return l
}

// SubmitCode implements provider.Login.
func (l *login) SubmitCode(ctx context.Context, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	finished := l.finished
	l.mu.Unlock()
	if finished {
		return errLoginFinished
	}
	if !l.acc.guard.NeedsCode() ||
		subtle.ConstantTimeCompare([]byte(code), []byte(l.acc.guardCode)) != 1 {
		return provider.ErrCodeMismatch
	}
	if !l.complete() {
		return errLoginFinished
	}
	return nil
}

// Cancel implements provider.Login.
func (l *login) Cancel() {
	if l.markFinished() {
		l.net.log.Debug("login cancelled", zap.String("account", l.acc.name))
	}
	l.d.stop()
}

// complete issues tokens and reports them. It reports false if the login
// already finished.
func (l *login) complete() bool {
	if !l.markFinished() {
		return false
	}
	tokens, err := l.net.issueTokens(l.acc)
	if err != nil {
		l.d.finish(func() { l.h.OnError(err) })
		return true
	}
	l.d.finish(func() { l.h.OnAuthenticated(tokens) })
	return true
}

func (l *login) expire() {
	if !l.markFinished() {
		return
	}
	l.net.log.Info("login timed out", zap.String("account", l.acc.name))
	l.d.finish(l.h.OnTimeout)
}

func (l *login) markFinished() bool {
	l.mu.Lock()
	if l.finished {
		l.mu.Unlock()
		return false
	}
	l.finished = true
	if l.timer != nil {
		l.timer.Stop()
	}
	l.mu.Unlock()

	l.net.mu.Lock()
	if l.net.pending[l.acc.name] == l {
		delete(l.net.pending, l.acc.name)
	}
	l.net.mu.Unlock()
	return true
}
