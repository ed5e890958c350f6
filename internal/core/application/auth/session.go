package auth

import (
	"context"
	"time"
)

// Session is created at login and resolved from the bearer token on every request.
type Session struct {
	ID        string
	Actor     Actor
	ExpiresAt time.Time
}

func (s Session) Expired(at time.Time) bool {
	return !at.Before(s.ExpiresAt)
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session placed by the authentication middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
