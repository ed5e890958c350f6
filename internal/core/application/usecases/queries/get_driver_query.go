package queries

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

type GetDriverQuery struct {
	actor    auth.Actor
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDriverQuery(actor auth.Actor, driverID kernel.UUID) (GetDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	return GetDriverQuery{actor: actor, driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

func (q GetDriverQuery) Actor() auth.Actor     { return q.actor }
func (q GetDriverQuery) DriverID() kernel.UUID { return q.driverID }
