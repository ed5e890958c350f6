package commands

import (
	"context"

	"logistics/internal/core/application/auth"
)

// AssignDriverCommandHandler assigns a chosen driver to a Pending order.
//
// Checks run before anything is written, in this order: the order exists, it is
// Pending, the driver exists and is eligible. The write is guarded on the order
// still being Pending, so two concurrent assignments cannot both succeed.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
}

func NewAssignDriverCommandHandler(uowFactory UoWFactory, notifier Notifier) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().RequireRole(auth.RoleAdmin); err != nil {
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
	if _, err = o.Status().Assign(); err != nil {
		return err
	}

	d, err := uow.DriverRepository().Get(ctx, command.DriverID())
	if err != nil {
		return err
	}
	if err = d.ValidateEligible(); err != nil {
		return err
	}

	if err = o.Assign(d.ID()); err != nil {
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
