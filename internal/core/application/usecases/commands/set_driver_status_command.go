package commands

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSetDriverStatusCommandIsNotConstructed = errors.New(
	"SetDriverStatusCommand must be created via NewSetDriverStatusCommand constructor",
)

// SetDriverStatusCommand activates, suspends or bans a driver. Admin only.
type SetDriverStatusCommand struct {
	actor    auth.Actor
	driverID kernel.UUID
	status   driver.Status

	guard guard.ConstructorGuard
}

func NewSetDriverStatusCommand(actor auth.Actor, driverID kernel.UUID, status string) (SetDriverStatusCommand, error) {
	s, statusErr := driver.ParseStatus(status)
	if err := errors.Join(wrapRequired("driverId", driverID.Validate()), statusErr); err != nil {
		return SetDriverStatusCommand{}, err
	}
	return SetDriverStatusCommand{
		actor:    actor,
		driverID: driverID,
		status:   s,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverStatusCommandIsNotConstructed)
}

func (c SetDriverStatusCommand) Actor() auth.Actor     { return c.actor }
func (c SetDriverStatusCommand) DriverID() kernel.UUID { return c.driverID }
func (c SetDriverStatusCommand) Status() driver.Status { return c.status }
