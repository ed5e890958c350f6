package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, actor auth.Actor, customerID kernel.UUID, price *decimal.Decimal) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), customerID,
		"Dock 4", "5 Mill St", decimal.NewFromInt(50), decimal.NewFromInt(10), price)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_QuotesPrice(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	c := storedCustomer(t, customer.StatusActive)
	cmd := newCreateOrderCommand(t, auth.Customer(c.ID()), c.ID(), nil)

	var added *order.Order
	mock.InOrder(
		e.uow.On("Begin", ctx).Return(nil).Once(),
		e.customers.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		e.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		e.uow.On("Commit", ctx).Return(nil).Once(),
		e.publisher.On("Publish", ctx, eventsWithStatus(order.Pending)).Return(nil).Once(),
	)

	err := commands.NewCreateOrderCommandHandler(uowFactory{e.uow}, e.notifier).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, order.Pending, added.Status())
	assert.Equal(t, c.ID(), added.CustomerID())
	// 50 kg over 10 km fits a car: 5 + 10*0.80 + 50*0.02.
	assert.Equal(t, "14.00", added.Price().String())
	assert.Empty(t, added.DomainEvents())
	e.uow.AssertExpectations(t)
	e.publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ExplicitPrice(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	c := storedCustomer(t, customer.StatusActive)
	price := decimal.RequireFromString("99.90")
	cmd := newCreateOrderCommand(t, auth.Admin(), c.ID(), &price)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.customers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	e.orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Price().String() == "99.90"
	})).Return(nil).Once()
	e.uow.On("Commit", ctx).Return(nil).Once()
	e.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	err := commands.NewCreateOrderCommandHandler(uowFactory{e.uow}, e.notifier).Handle(ctx, cmd)

	require.NoError(t, err)
	e.orders.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_OtherCustomerDenied(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	cmd := newCreateOrderCommand(t, auth.Customer(kernel.NewUUID()), kernel.NewUUID(), nil)

	err := commands.NewCreateOrderCommandHandler(uowFactory{e.uow}, e.notifier).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	e.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_DriverDenied(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	id := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, auth.Driver(id), id, nil)

	err := commands.NewCreateOrderCommandHandler(uowFactory{e.uow}, e.notifier).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	id := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, auth.Admin(), id, nil)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.customers.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("customerId", id)).Once()

	err := commands.NewCreateOrderCommandHandler(uowFactory{e.uow}, e.notifier).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	e.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	e.assertNothingPublished(t)
}

func TestCreateOrderCommandHandler_Handle_SuspendedCustomer(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	c := storedCustomer(t, customer.StatusSuspended)
	cmd := newCreateOrderCommand(t, auth.Customer(c.ID()), c.ID(), nil)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.customers.On("Get", ctx, c.ID()).Return(c, nil).Once()

	err := commands.NewCreateOrderCommandHandler(uowFactory{e.uow}, e.notifier).Handle(ctx, cmd)

	require.ErrorIs(t, err, customer.ErrCustomerIsSuspended)
	assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	e.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_TooHeavyToQuote(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(auth.Customer(id), kernel.NewUUID(), id,
		"Dock 4", "5 Mill St", decimal.NewFromInt(25000), decimal.NewFromInt(10), nil)
	require.NoError(t, err)

	err = commands.NewCreateOrderCommandHandler(uowFactory{e.uow}, e.notifier).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	e.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	c := storedCustomer(t, customer.StatusActive)
	cmd := newCreateOrderCommand(t, auth.Customer(c.ID()), c.ID(), nil)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.customers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	e.orders.On("Add", ctx, mock.Anything).Return(nil).Once()
	e.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()

	err := commands.NewCreateOrderCommandHandler(uowFactory{e.uow}, e.notifier).Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	e.uow.AssertCalled(t, "Rollback", ctx)
	e.assertNothingPublished(t)
}

func TestCreateOrderCommandHandler_Handle_PublishFailureIsNotAnError(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)
	c := storedCustomer(t, customer.StatusActive)
	cmd := newCreateOrderCommand(t, auth.Customer(c.ID()), c.ID(), nil)

	e.uow.On("Begin", ctx).Return(nil).Once()
	e.customers.On("Get", ctx, c.ID()).Return(c, nil).Once()
	e.orders.On("Add", ctx, mock.Anything).Return(nil).Once()
	e.uow.On("Commit", ctx).Return(nil).Once()
	e.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	err := commands.NewCreateOrderCommandHandler(uowFactory{e.uow}, e.notifier).Handle(ctx, cmd)

	require.NoError(t, err)
	e.publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	e := newEnv(ctx)

	err := commands.NewCreateOrderCommandHandler(uowFactory{e.uow}, e.notifier).
		Handle(ctx, commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
