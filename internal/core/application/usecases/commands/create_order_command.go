package commands

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand books a transport order for a customer.
// When no price is given the handler quotes one from weight and distance.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, kernel.NewUUID(), customerID,
//	    "Dock 4", "5 Mill St", decimal.NewFromInt(12), decimal.NewFromInt(8), nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor            auth.Actor
	orderID          kernel.UUID
	customerID       kernel.UUID
	pickupLocation   kernel.Address
	deliveryLocation kernel.Address
	weightKg         decimal.Decimal
	distanceKm       decimal.Decimal
	price            *kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	actor auth.Actor,
	orderID kernel.UUID,
	customerID kernel.UUID,
	pickupLocation string,
	deliveryLocation string,
	weightKg decimal.Decimal,
	distanceKm decimal.Decimal,
	price *decimal.Decimal,
) (CreateOrderCommand, error) {
	c := CreateOrderCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setOrderID(orderID),
		c.setCustomerID(customerID),
		c.setPickupLocation(pickupLocation),
		c.setDeliveryLocation(deliveryLocation),
		c.setWeightKg(weightKg),
		c.setDistanceKm(distanceKm),
		c.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return c, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() auth.Actor                { return c.actor }
func (c CreateOrderCommand) OrderID() kernel.UUID             { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID          { return c.customerID }
func (c CreateOrderCommand) PickupLocation() kernel.Address   { return c.pickupLocation }
func (c CreateOrderCommand) DeliveryLocation() kernel.Address { return c.deliveryLocation }
func (c CreateOrderCommand) WeightKg() decimal.Decimal        { return c.weightKg }
func (c CreateOrderCommand) DistanceKm() decimal.Decimal      { return c.distanceKm }

// Price returns the price chosen by the caller, or nil when it should be quoted.
func (c CreateOrderCommand) Price() *kernel.Money {
	return c.price
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setPickupLocation(value string) error {
	a, err := kernel.NewAddress("pickupLocation", value)
	if err != nil {
		return err
	}
	c.pickupLocation = a
	return nil
}

func (c *CreateOrderCommand) setDeliveryLocation(value string) error {
	a, err := kernel.NewAddress("deliveryLocation", value)
	if err != nil {
		return err
	}
	c.deliveryLocation = a
	return nil
}

func (c *CreateOrderCommand) setWeightKg(v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsOutOfRangeError("weightKg", v, 0, "unbounded")
	}
	c.weightKg = v
	return nil
}

func (c *CreateOrderCommand) setDistanceKm(v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsOutOfRangeError("distanceKm", v, 0, "unbounded")
	}
	c.distanceKm = v
	return nil
}

func (c *CreateOrderCommand) setPrice(v *decimal.Decimal) error {
	if v == nil {
		return nil
	}
	m, err := kernel.NewMoney(*v)
	if err != nil {
		return err
	}
	c.price = &m
	return nil
}
