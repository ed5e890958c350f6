package commands

import (
	"context"

	"logistics/internal/core/application/auth"
)

// CancelOrderCommandHandler cancels an order on behalf of its customer or an admin.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	o, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	actor := command.Actor()
	if !actor.IsAdmin() && !actor.Is(auth.RoleCustomer, o.CustomerID()) {
		return auth.Denied("only the customer who booked this order may cancel it")
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, o)
	return nil
}
