package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) FindOrders(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) CountOrdersByStatus(ctx context.Context) (map[order.Status]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[order.Status]int), args.Error(1)
}

func (m *MockOrderReader) CompletedRevenue(ctx context.Context) (kernel.Money, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockDriverReader struct{ mock.Mock }

func (m *MockDriverReader) FindDrivers(ctx context.Context, filter ports.DriverFilter) ([]*driver.Driver, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverReader) GetDriver(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverReader) CountDriversByStatus(ctx context.Context) (map[driver.Status]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[driver.Status]int), args.Error(1)
}

type MockCustomerReader struct{ mock.Mock }

func (m *MockCustomerReader) FindCustomers(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerReader) CountCustomers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func testOrder(t *testing.T, status order.Status, customerID kernel.UUID, driverID *kernel.UUID) *order.Order {
	t.Helper()
	pickup, _ := kernel.NewAddress("pickupLocation", "Dock 4")
	delivery, _ := kernel.NewAddress("deliveryLocation", "5 Mill St")
	price, _ := kernel.MoneyFromFloat(42.5)
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(order.Snapshot{
		ID: kernel.NewUUID(), CustomerID: customerID, DriverID: driverID, Status: status,
		Price: price, PickupLocation: pickup, DeliveryLocation: delivery, CreatedAt: ts, UpdatedAt: ts,
	})
	require.NoError(t, err)
	return o
}

func testDriver(t *testing.T, count, sum int) *driver.Driver {
	t.Helper()
	name, _ := kernel.NewName("Grace Hopper")
	email, _ := kernel.NewEmail("grace@example.com")
	phone, _ := kernel.NewPhone("5550100200")
	rating, err := driver.NewRatingSummary(count, sum)
	require.NoError(t, err)
	d, err := driver.RestoreDriver(driver.Snapshot{
		ID: kernel.NewUUID(), Name: name, Email: email, Phone: phone, PasswordHash: "secret-hash",
		Vehicle: driver.VehicleTruck, Status: driver.StatusActive, DocumentsVerified: true, Rating: rating,
	})
	require.NoError(t, err)
	return d
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	name, _ := kernel.NewName("Ada Lovelace")
	email, _ := kernel.NewEmail("ada@example.com")
	phone, _ := kernel.NewPhone("5550100200")
	address, _ := kernel.NewAddress("address", "12 Crescent Rd")
	c, err := customer.RestoreCustomer(customer.Snapshot{
		ID: kernel.NewUUID(), Name: name, Email: email, Phone: phone, Address: address,
		PasswordHash: "secret-hash", Status: customer.StatusActive,
	})
	require.NoError(t, err)
	return c
}
