package commands

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSetCustomerStatusCommandIsNotConstructed = errors.New(
	"SetCustomerStatusCommand must be created via NewSetCustomerStatusCommand constructor",
)

// SetCustomerStatusCommand suspends or reactivates a customer. Admin only.
type SetCustomerStatusCommand struct {
	actor      auth.Actor
	customerID kernel.UUID
	status     customer.Status

	guard guard.ConstructorGuard
}

func NewSetCustomerStatusCommand(actor auth.Actor, customerID kernel.UUID, status string) (SetCustomerStatusCommand, error) {
	s, statusErr := customer.ParseStatus(status)
	if err := errors.Join(wrapRequired("customerId", customerID.Validate()), statusErr); err != nil {
		return SetCustomerStatusCommand{}, err
	}
	return SetCustomerStatusCommand{
		actor:      actor,
		customerID: customerID,
		status:     s,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetCustomerStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetCustomerStatusCommandIsNotConstructed)
}

func (c SetCustomerStatusCommand) Actor() auth.Actor       { return c.actor }
func (c SetCustomerStatusCommand) CustomerID() kernel.UUID { return c.customerID }
func (c SetCustomerStatusCommand) Status() customer.Status { return c.status }
