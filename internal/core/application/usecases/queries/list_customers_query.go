package queries

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

type ListCustomersQuery struct {
	actor auth.Actor
	guard guard.ConstructorGuard
}

func NewListCustomersQuery(actor auth.Actor) ListCustomersQuery {
	return ListCustomersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

func (q ListCustomersQuery) Actor() auth.Actor { return q.actor }
