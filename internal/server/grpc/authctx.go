package grpcserver

import (
	"context"
	"net"

	"google.golang.org/grpc/peer"

	"github.com/and161185/im-relay/internal/model"
)

// sessionKeyed is implemented by every relay request carrying a session key.
type sessionKeyed interface {
	GetSessionKey() string
}

// sessionKeyOf returns the session key carried by req, if any.
func sessionKeyOf(req any) model.SessionKey {
	if r, ok := req.(sessionKeyed); ok {
		return model.SessionKey(r.GetSessionKey())
	}
	return ""
}

// remoteAddr returns the peer address as host:port.
func remoteAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

// remoteIP returns the peer host without the port. The login limiter keys on it.
func remoteIP(ctx context.Context) string {
	addr := remoteAddr(ctx)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
