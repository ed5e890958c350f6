package commands

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves an order one step forward: Assigned to InProgress,
// or InProgress to Completed.
type AdvanceOrderCommand struct {
	actor   auth.Actor
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand accepts the target status by name ("InProgress", "Completed").
func NewAdvanceOrderCommand(actor auth.Actor, orderID kernel.UUID, target string) (AdvanceOrderCommand, error) {
	status, statusErr := order.ParseStatus(target)
	if err := errors.Join(
		wrapRequired("orderId", orderID.Validate()),
		statusErr,
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		actor:   actor,
		orderID: orderID,
		target:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) Actor() auth.Actor    { return c.actor }
func (c AdvanceOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c AdvanceOrderCommand) Target() order.Status { return c.target }
