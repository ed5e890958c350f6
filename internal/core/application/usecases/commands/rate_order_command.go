package commands

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand records the customer's 1..5 rating of a Completed order.
type RateOrderCommand struct {
	actor   auth.Actor
	orderID kernel.UUID
	rating  kernel.Rating

	guard guard.ConstructorGuard
}

func NewRateOrderCommand(actor auth.Actor, orderID kernel.UUID, value int) (RateOrderCommand, error) {
	rating, ratingErr := kernel.NewRating(value)
	if err := errors.Join(
		wrapRequired("orderId", orderID.Validate()),
		ratingErr,
	); err != nil {
		return RateOrderCommand{}, err
	}

	return RateOrderCommand{
		actor:   actor,
		orderID: orderID,
		rating:  rating,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

func (c RateOrderCommand) Actor() auth.Actor     { return c.actor }
func (c RateOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c RateOrderCommand) Rating() kernel.Rating { return c.rating }
