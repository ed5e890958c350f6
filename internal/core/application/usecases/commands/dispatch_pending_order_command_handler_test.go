package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchPendingOrderCommandHandler_Handle_PicksBestRatedDriver(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	o := storedOrder(t, order.Pending, kernel.NewUUID(), nil)
	average := storedDriver(t, driver.StatusActive, true, 2, 6)
	best := storedDriver(t, driver.StatusActive, true, 2, 10)

	mock.InOrder(
		e.uow.On("Begin", ctx).Return(nil).Once(),
		e.orders.On("GetOldestPending", ctx).Return(o, nil).Once(),
		e.drivers.On("GetAllFreeEligible", ctx).Return([]*driver.Driver{average, best}, nil).Once(),
		e.orders.On("Update", ctx, o).Return(nil).Once(),
		e.uow.On("Commit", ctx).Return(nil).Once(),
		e.publisher.On("Publish", ctx, eventsWithStatus(order.Assigned)).Return(nil).Once(),
	)

	err := commands.NewDispatchPendingOrderCommandHandler(uowFactory{e.uow}, e.notifier).
		Handle(ctx, commands.NewDispatchPendingOrderCommand())

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, o.Status())
	require.NotNil(t, o.DriverID())
	assert.True(t, best.ID().IsEqual(*o.DriverID()))
	e.publisher.AssertExpectations(t)
}

func TestDispatchPendingOrderCommandHandler_Handle_NoPendingOrder(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.orders.On("GetOldestPending", ctx).Return(nil, errs.NewObjectNotFoundError("status", "Pending")).Once()

	err := commands.NewDispatchPendingOrderCommandHandler(uowFactory{e.uow}, e.notifier).
		Handle(ctx, commands.NewDispatchPendingOrderCommand())

	require.ErrorIs(t, err, commands.ErrNoPendingOrder)
	e.drivers.AssertNotCalled(t, "GetAllFreeEligible", mock.Anything)
}

func TestDispatchPendingOrderCommandHandler_Handle_NoDrivers(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	o := storedOrder(t, order.Pending, kernel.NewUUID(), nil)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.orders.On("GetOldestPending", ctx).Return(o, nil).Once()
	e.drivers.On("GetAllFreeEligible", ctx).Return([]*driver.Driver{}, nil).Once()

	err := commands.NewDispatchPendingOrderCommandHandler(uowFactory{e.uow}, e.notifier).
		Handle(ctx, commands.NewDispatchPendingOrderCommand())

	require.ErrorIs(t, err, commands.ErrNoEligibleDriver)
	assert.Equal(t, order.Pending, o.Status())
	e.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDispatchPendingOrderCommandHandler_Handle_OnlyIneligibleDrivers(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	o := storedOrder(t, order.Pending, kernel.NewUUID(), nil)
	unverified := storedDriver(t, driver.StatusActive, false, 0, 0)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.orders.On("GetOldestPending", ctx).Return(o, nil).Once()
	e.drivers.On("GetAllFreeEligible", ctx).Return([]*driver.Driver{unverified}, nil).Once()

	err := commands.NewDispatchPendingOrderCommandHandler(uowFactory{e.uow}, e.notifier).
		Handle(ctx, commands.NewDispatchPendingOrderCommand())

	require.ErrorIs(t, err, commands.ErrNoEligibleDriver)
}

func TestDispatchPendingOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	o := storedOrder(t, order.Pending, kernel.NewUUID(), nil)
	d := storedDriver(t, driver.StatusActive, true, 0, 0)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.orders.On("GetOldestPending", ctx).Return(o, nil).Once()
	e.drivers.On("GetAllFreeEligible", ctx).Return([]*driver.Driver{d}, nil).Once()
	e.orders.On("Update", ctx, o).Return(errs.NewConflictError("orderId", o.ID())).Once()

	err := commands.NewDispatchPendingOrderCommandHandler(uowFactory{e.uow}, e.notifier).
		Handle(ctx, commands.NewDispatchPendingOrderCommand())

	require.ErrorIs(t, err, errs.ErrConflict)
	e.assertNothingPublished(t)
}

func TestDispatchPendingOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)

	e.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	err := commands.NewDispatchPendingOrderCommandHandler(uowFactory{e.uow}, e.notifier).
		Handle(ctx, commands.NewDispatchPendingOrderCommand())

	require.EqualError(t, err, "begin error")
	e.uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestDispatchPendingOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)

	err := commands.NewDispatchPendingOrderCommandHandler(uowFactory{e.uow}, e.notifier).
		Handle(ctx, commands.DispatchPendingOrderCommand{})

	require.ErrorIs(t, err, commands.ErrDispatchPendingOrderCommandIsNotConstructed)
}
