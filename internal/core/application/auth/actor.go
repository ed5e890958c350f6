// Package auth models who performs an operation: roles, the authenticated actor and the
// login session that carries it between requests.
package auth

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Role is the kind of account an actor logged in with.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidError("role")
	}
}

func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated caller of an operation. Admins have no account record,
// so their UserID is the zero UUID.
type Actor struct {
	UserID kernel.UUID
	Role   Role
}

func Customer(id kernel.UUID) Actor { return Actor{UserID: id, Role: RoleCustomer} }
func Driver(id kernel.UUID) Actor   { return Actor{UserID: id, Role: RoleDriver} }
func Admin() Actor                  { return Actor{Role: RoleAdmin} }

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Is reports whether the actor is the account id logged in as role.
func (a Actor) Is(role Role, id kernel.UUID) bool {
	return a.Role == role && a.UserID.IsEqual(id)
}

// RequireRole returns a permission error unless the actor has one of roles.
func (a Actor) RequireRole(roles ...Role) error {
	for _, r := range roles {
		if a.Role == r {
			return nil
		}
	}
	return Denied("%s may not perform this operation", a.Role)
}

// Denied builds an error classified as errs.KindPermissionDenied.
func Denied(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errs.ErrPermissionDenied, fmt.Sprintf(format, args...))
}

// Unauthenticated builds an error classified as errs.KindNotAuthenticated.
func Unauthenticated(reason string) error {
	return fmt.Errorf("%w: %s", errs.ErrNotAuthenticated, reason)
}
