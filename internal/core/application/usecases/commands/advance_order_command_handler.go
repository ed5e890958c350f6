package commands

import (
	"context"

	"logistics/internal/core/application/auth"
)

// AdvanceOrderCommandHandler progresses an order. Only the assigned driver or an
// admin may do so.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, command AdvanceOrderCommand) error {
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
	if !actor.IsAdmin() {
		driverID := o.DriverID()
		if driverID == nil || !actor.Is(auth.RoleDriver, *driverID) {
			return auth.Denied("only the assigned driver may advance this order")
		}
	}

	if err = o.Advance(command.Target()); err != nil {
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
