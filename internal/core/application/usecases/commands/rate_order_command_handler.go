package commands

import (
	"context"
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/pkg/errs"
)

// RateOrderCommandHandler stores a rating on the order and folds it into the
// driver's rating summary. Both writes are guarded and share one transaction, so a
// conflict on either leaves both records untouched.
type RateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
}

func NewRateOrderCommandHandler(uowFactory UoWFactory, notifier Notifier) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h RateOrderCommandHandler) Handle(ctx context.Context, command RateOrderCommand) error {
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
	driversRepo := uow.DriverRepository()

	o, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	actor := command.Actor()
	if !actor.IsAdmin() && !actor.Is(auth.RoleCustomer, o.CustomerID()) {
		return auth.Denied("only the customer who booked this order may rate it")
	}

	if err = o.Rate(command.Rating()); err != nil {
		return err
	}

	driverID := o.DriverID()
	if driverID == nil {
		return errs.NewValueIsInvalidErrorWithCause("driverId", errors.New("completed order has no driver"))
	}

	d, err := driversRepo.Get(ctx, *driverID)
	if err != nil {
		return err
	}
	if err = d.AddRating(command.Rating()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = driversRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, o)
	return nil
}
