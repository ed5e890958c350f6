package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

var (
	ErrNoPendingOrder   = errors.New("no pending order found")
	ErrNoEligibleDriver = errors.New("no free eligible driver found")
)

// DispatchPendingOrderCommandHandler picks the oldest Pending order and lets
// DriverSelector choose its driver. The write goes through the same guarded update
// as a manual assignment, so an order assigned by an admin in the meantime is
// reported as a conflict instead of being reassigned.
//
// Example:
//
//	err := handler.Handle(ctx, NewDispatchPendingOrderCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingOrder):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoEligibleDriver):
//	    log.Println("All drivers are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type DispatchPendingOrderCommandHandler struct {
	uowFactory UoWFactory
	selector   services.DriverSelector
	notifier   Notifier
}

func NewDispatchPendingOrderCommandHandler(uowFactory UoWFactory, notifier Notifier) DispatchPendingOrderCommandHandler {
	return DispatchPendingOrderCommandHandler{
		uowFactory: uowFactory,
		selector:   services.NewDriverSelector(),
		notifier:   notifier,
	}
}

func (h DispatchPendingOrderCommandHandler) Handle(ctx context.Context, command DispatchPendingOrderCommand) error {
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

	o, err := ordersRepo.GetOldestPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrder
	}
	if err != nil {
		return err
	}

	drivers, err := driversRepo.GetAllFreeEligible(ctx)
	if err != nil {
		return err
	}
	if len(drivers) == 0 {
		return ErrNoEligibleDriver
	}

	if _, err = h.selector.Dispatch(o, drivers); err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			return ErrNoEligibleDriver
		}
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
