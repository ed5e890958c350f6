package commands

import (
	"context"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

// CreateOrderCommandHandler books a new Pending order.
//
// The customer must exist and be Active. Customers may only book for themselves;
// admins may book on behalf of any customer.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	advisor    services.VehicleAdvisor
	notifier   Notifier
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, notifier Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		advisor:    services.NewVehicleAdvisor(),
		notifier:   notifier,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if !actor.IsAdmin() && !actor.Is(auth.RoleCustomer, command.CustomerID()) {
		return auth.Denied("orders can only be booked for your own account")
	}

	price := command.Price()
	if price == nil {
		quote, err := h.advisor.Quote(command.WeightKg(), command.DistanceKm())
		if err != nil {
			return err
		}
		price = &quote.Price
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CustomerRepository().Get(ctx, command.CustomerID())
	if err != nil {
		return err
	}
	if err = c.ValidateCanBook(); err != nil {
		return err
	}

	o, err := order.NewOrder(
		command.OrderID(),
		c.ID(),
		command.PickupLocation(),
		command.DeliveryLocation(),
		*price,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, o)
	return nil
}
