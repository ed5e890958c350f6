package queries_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	q, err := queries.NewListOrdersQuery(auth.Admin(), nil, nil, []string{"Pending", "Completed"})
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, []order.Status{order.Pending, order.Completed}, q.Statuses())

	_, err = queries.NewListOrdersQuery(auth.Admin(), nil, nil, []string{"Pending", "pending", "Lost"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}

func TestListOrdersQueryHandler_Handle_AdminEmptyFilterReturnsAll(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	driverID := kernel.NewUUID()
	orders := []*order.Order{
		testOrder(t, order.Pending, kernel.NewUUID(), nil),
		testOrder(t, order.Assigned, kernel.NewUUID(), &driverID),
	}
	reader.On("FindOrders", ctx, ports.OrderFilter{Statuses: []order.Status{}}).Return(orders, nil).Once()

	q, err := queries.NewListOrdersQuery(auth.Admin(), nil, nil, nil)
	require.NoError(t, err)

	views, err := queries.NewListOrdersQueryHandler(reader).Handle(ctx, q)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Pending", views[0].Status)
	assert.Nil(t, views[0].DriverID)
	assert.Equal(t, "Assigned", views[1].Status)
	assert.Equal(t, driverID, *views[1].DriverID)
	assert.Equal(t, "42.50", views[1].Price.String())
	reader.AssertExpectations(t)
}

func TestListOrdersQueryHandler_Handle_CustomerSeesOwnOrdersOnly(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	customerID := kernel.NewUUID()

	reader.On("FindOrders", ctx, mock.MatchedBy(func(f ports.OrderFilter) bool {
		return f.CustomerID != nil && f.CustomerID.IsEqual(customerID) && f.DriverID == nil
	})).Return(nil, nil).Once()

	q, err := queries.NewListOrdersQuery(auth.Customer(customerID), nil, nil, nil)
	require.NoError(t, err)

	views, err := queries.NewListOrdersQueryHandler(reader).Handle(ctx, q)

	require.NoError(t, err)
	assert.Empty(t, views)
	reader.AssertExpectations(t)
}

func TestListOrdersQueryHandler_Handle_DriverFilterIsForced(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	driverID := kernel.NewUUID()

	reader.On("FindOrders", ctx, mock.MatchedBy(func(f ports.OrderFilter) bool {
		return f.DriverID != nil && f.DriverID.IsEqual(driverID) &&
			len(f.Statuses) == 1 && f.Statuses[0] == order.InProgress
	})).Return(nil, nil).Once()

	q, err := queries.NewListOrdersQuery(auth.Driver(driverID), nil, nil, []string{"InProgress"})
	require.NoError(t, err)

	_, err = queries.NewListOrdersQueryHandler(reader).Handle(ctx, q)

	require.NoError(t, err)
	reader.AssertExpectations(t)
}

func TestListOrdersQueryHandler_Handle_ForeignFilterDenied(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	other := kernel.NewUUID()

	customerQuery, err := queries.NewListOrdersQuery(auth.Customer(kernel.NewUUID()), &other, nil, nil)
	require.NoError(t, err)
	_, err = queries.NewListOrdersQueryHandler(reader).Handle(ctx, customerQuery)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)

	driverQuery, err := queries.NewListOrdersQuery(auth.Driver(kernel.NewUUID()), nil, &other, nil)
	require.NoError(t, err)
	_, err = queries.NewListOrdersQueryHandler(reader).Handle(ctx, driverQuery)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)

	reader.AssertNotCalled(t, "FindOrders", mock.Anything, mock.Anything)
}

func TestListOrdersQueryHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	reader.On("FindOrders", ctx, mock.Anything).
		Return(nil, errs.NewStoreUnavailableError("find orders", errors.New("timeout"))).Once()

	q, err := queries.NewListOrdersQuery(auth.Admin(), nil, nil, nil)
	require.NoError(t, err)

	_, err = queries.NewListOrdersQueryHandler(reader).Handle(ctx, q)

	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
}
