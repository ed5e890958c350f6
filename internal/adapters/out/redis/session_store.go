// Package redis keeps login sessions in Redis. Each session is a hash that expires
// together with the session, so logout and expiry both remove it.
package redis

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type SessionStore struct {
	client *goredis.Client
	now    func() time.Time
}

func NewClient(addr, password string) *goredis.Client {
	return goredis.NewClient(&goredis.Options{Addr: addr, Password: password})
}

func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

func (s *SessionStore) Save(ctx context.Context, session auth.Session) error {
	if !session.ExpiresAt.After(s.now()) {
		return errs.NewValueIsInvalidError("expiresAt")
	}

	key := sessionKey(session.ID)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    session.Actor.UserID.String(),
			"role":       session.Actor.Role.String(),
			"expires_at": session.ExpiresAt.UTC().Format(time.RFC3339Nano),
		})
		pipe.ExpireAt(ctx, key, session.ExpiresAt)
		return nil
	})
	if err != nil {
		return errs.NewStoreUnavailableError("save session", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (auth.Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return auth.Session{}, errs.NewStoreUnavailableError("get session", err)
	}
	if len(fields) == 0 {
		return auth.Session{}, auth.ErrSessionNotFound
	}

	session, err := decode(id, fields)
	if err != nil {
		return auth.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	if session.Expired(s.now()) {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return errs.NewStoreUnavailableError("delete session", err)
	}
	if removed == 0 {
		return auth.ErrSessionNotFound
	}
	return nil
}

func decode(id string, fields map[string]string) (auth.Session, error) {
	role, err := auth.ParseRole(fields["role"])
	if err != nil {
		return auth.Session{}, err
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, fields["expires_at"])
	if err != nil {
		return auth.Session{}, err
	}

	actor := auth.Actor{Role: role}
	if role != auth.RoleAdmin {
		userID, err := kernel.UUIDFromString(fields["user_id"])
		if err != nil {
			return auth.Session{}, err
		}
		actor.UserID = userID
	}
	return auth.Session{ID: id, Actor: actor, ExpiresAt: expiresAt}, nil
}

func sessionKey(id string) string { return keyPrefix + id }
