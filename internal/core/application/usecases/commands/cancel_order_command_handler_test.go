package commands_test

import (
	"testing"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCancelOrderCommand(t *testing.T, actor auth.Actor, orderID kernel.UUID) commands.CancelOrderCommand {
	t.Helper()
	cmd, err := commands.NewCancelOrderCommand(actor, orderID)
	require.NoError(t, err)
	return cmd
}

func TestCancelOrderCommandHandler_Handle_Owner(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	customerID := kernel.NewUUID()
	o := storedOrder(t, order.Pending, customerID, nil)

	mock.InOrder(
		e.uow.On("Begin", ctx).Return(nil).Once(),
		e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		e.orders.On("Update", ctx, o).Return(nil).Once(),
		e.uow.On("Commit", ctx).Return(nil).Once(),
		e.publisher.On("Publish", ctx, eventsWithStatus(order.Cancelled)).Return(nil).Once(),
	)

	err := commands.NewCancelOrderCommandHandler(orderUoWFactory{e.uow}, e.notifier).
		Handle(ctx, newCancelOrderCommand(t, auth.Customer(customerID), o.ID()))

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	e.publisher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AssignedKeepsDriver(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	driverID := kernel.NewUUID()
	o := storedOrder(t, order.Assigned, kernel.NewUUID(), &driverID)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	e.orders.On("Update", ctx, o).Return(nil).Once()
	e.uow.On("Commit", ctx).Return(nil).Once()
	e.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	err := commands.NewCancelOrderCommandHandler(orderUoWFactory{e.uow}, e.notifier).
		Handle(ctx, newCancelOrderCommand(t, auth.Admin(), o.ID()))

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	require.NotNil(t, o.DriverID())
	assert.True(t, driverID.IsEqual(*o.DriverID()))
}

func TestCancelOrderCommandHandler_Handle_NotCancellable(t *testing.T) {
	for _, status := range []order.Status{order.InProgress, order.Completed, order.Cancelled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			e := newEnv(ctx)
			driverID := kernel.NewUUID()
			o := storedOrder(t, status, kernel.NewUUID(), &driverID)

			e.uow.On("Begin", ctx).Return(nil).Once()
			e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

			err := commands.NewCancelOrderCommandHandler(orderUoWFactory{e.uow}, e.notifier).
				Handle(ctx, newCancelOrderCommand(t, auth.Admin(), o.ID()))

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, status, o.Status())
			e.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_OtherCustomerDenied(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	o := storedOrder(t, order.Pending, kernel.NewUUID(), nil)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	err := commands.NewCancelOrderCommandHandler(orderUoWFactory{e.uow}, e.notifier).
		Handle(ctx, newCancelOrderCommand(t, auth.Customer(kernel.NewUUID()), o.ID()))

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.Pending, o.Status())
}

func TestCancelOrderCommandHandler_Handle_AssignedDriverDenied(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	driverID := kernel.NewUUID()
	o := storedOrder(t, order.Assigned, kernel.NewUUID(), &driverID)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	err := commands.NewCancelOrderCommandHandler(orderUoWFactory{e.uow}, e.notifier).
		Handle(ctx, newCancelOrderCommand(t, auth.Driver(driverID), o.ID()))

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
}
