package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ErrSessionNotFound is returned by a SessionStore for an unknown or expired session.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps live sessions until they expire or the user logs out.
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenCodec turns a session into a signed bearer token and back into a session id.
type TokenCodec interface {
	Issue(s Session) (string, error)
	SessionID(token string) (string, error)
}

// AdminCredentials are the configured login of the single admin account.
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

// Login is the result of a successful login.
type Login struct {
	Token   string
	Session Session
}

// Service authenticates customers, drivers and the admin.
type Service struct {
	uowFactory ports.UnitOfWorkFactory
	hasher     ports.PasswordHasher
	sessions   SessionStore
	tokens     TokenCodec
	admin      AdminCredentials
	ttl        time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

func NewService(
	uowFactory ports.UnitOfWorkFactory,
	hasher ports.PasswordHasher,
	sessions SessionStore,
	tokens TokenCodec,
	admin AdminCredentials,
	ttl time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		uowFactory: uowFactory,
		hasher:     hasher,
		sessions:   sessions,
		tokens:     tokens,
		admin:      admin,
		ttl:        ttl,
		now:        time.Now,
		logger:     logger.With("component", "auth"),
	}
}

// Login checks credentials for role and opens a session. Unknown accounts and wrong
// passwords are reported the same way.
func (s *Service) Login(ctx context.Context, role Role, email, password string) (Login, error) {
	actor, err := s.authenticate(ctx, role, email, password)
	if err != nil {
		return Login{}, err
	}

	session := Session{
		ID:        kernel.NewUUID().String(),
		Actor:     actor,
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return Login{}, err
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		_ = s.sessions.Delete(ctx, session.ID)
		return Login{}, err
	}

	s.logger.InfoContext(ctx, "login", "role", role, "user_id", actor.UserID.String())
	return Login{Token: token, Session: session}, nil
}

// Authenticate resolves a bearer token into a live session.
func (s *Service) Authenticate(ctx context.Context, token string) (Session, error) {
	id, err := s.tokens.SessionID(token)
	if err != nil {
		return Session{}, Unauthenticated("invalid token")
	}

	session, err := s.sessions.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return Session{}, Unauthenticated("session expired")
	}
	if err != nil {
		return Session{}, err
	}
	if session.Expired(s.now()) {
		return Session{}, Unauthenticated("session expired")
	}
	return session, nil
}

// Logout ends the session. Ending an already expired session is not an error.
func (s *Service) Logout(ctx context.Context, session Session) error {
	if err := s.sessions.Delete(ctx, session.ID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

func (s *Service) authenticate(ctx context.Context, role Role, rawEmail, password string) (Actor, error) {
	invalid := Unauthenticated("invalid email or password")

	email, err := kernel.NewEmail(rawEmail)
	if err != nil {
		return Actor{}, invalid
	}

	switch role {
	case RoleAdmin:
		if s.admin.Email == "" || email.String() != s.admin.Email {
			return Actor{}, invalid
		}
		if s.hasher.Compare(s.admin.PasswordHash, password) != nil {
			return Actor{}, invalid
		}
		return Admin(), nil

	case RoleCustomer:
		c, err := s.uowFactory.Create().CustomerRepository().GetByEmail(ctx, email)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return Actor{}, invalid
		}
		if err != nil {
			return Actor{}, err
		}
		if s.hasher.Compare(c.PasswordHash(), password) != nil {
			return Actor{}, invalid
		}
		if c.Status() != customer.StatusActive {
			return Actor{}, Denied("customer account is %s", c.Status())
		}
		return Customer(c.ID()), nil

	case RoleDriver:
		d, err := s.uowFactory.Create().DriverRepository().GetByEmail(ctx, email)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return Actor{}, invalid
		}
		if err != nil {
			return Actor{}, err
		}
		if s.hasher.Compare(d.PasswordHash(), password) != nil {
			return Actor{}, invalid
		}
		if d.Status() == driver.StatusBanned {
			return Actor{}, Denied("driver account is %s", d.Status())
		}
		return Driver(d.ID()), nil

	default:
		return Actor{}, errs.NewValueIsInvalidError("role")
	}
}
