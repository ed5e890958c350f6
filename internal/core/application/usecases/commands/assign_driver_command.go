package commands

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand attaches a driver to a Pending order. Admin only.
type AssignDriverCommand struct {
	actor    auth.Actor
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(actor auth.Actor, orderID, driverID kernel.UUID) (AssignDriverCommand, error) {
	if err := errors.Join(
		wrapRequired("orderId", orderID.Validate()),
		wrapRequired("driverId", driverID.Validate()),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		actor:    actor,
		orderID:  orderID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) Actor() auth.Actor     { return c.actor }
func (c AssignDriverCommand) OrderID() kernel.UUID  { return c.orderID }
func (c AssignDriverCommand) DriverID() kernel.UUID { return c.driverID }

// wrapRequired names the parameter a failed identifier check belongs to.
func wrapRequired(paramName string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(paramName, err)
}
