package commands

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand withdraws a Pending or Assigned order.
type CancelOrderCommand struct {
	actor   auth.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(actor auth.Actor, orderID kernel.UUID) (CancelOrderCommand, error) {
	if err := wrapRequired("orderId", orderID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Actor() auth.Actor    { return c.actor }
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
