package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOldestPending(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByEmail(ctx context.Context, email kernel.Email) (*driver.Driver, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllFreeEligible(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type driverUoWFactory struct{ uow *MockUoW }

func (f driverUoWFactory) Create() commands.DriverUoW { return f.uow }

type customerUoWFactory struct{ uow *MockUoW }

func (f customerUoWFactory) Create() commands.CustomerUoW { return f.uow }

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, events ...order.ChangedEvent) error {
	return m.Called(ctx, events).Error(0)
}

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, plain string) error {
	return m.Called(hash, plain).Error(0)
}

// env bundles the mocks a handler test needs. Rollback is always allowed because
// every handler defers it.
type env struct {
	uow       *MockUoW
	orders    *MockOrderRepository
	drivers   *MockDriverRepository
	customers *MockCustomerRepository
	publisher *MockPublisher
	notifier  commands.Notifier
}

func newEnv(ctx context.Context) *env {
	e := &env{
		uow:       new(MockUoW),
		orders:    new(MockOrderRepository),
		drivers:   new(MockDriverRepository),
		customers: new(MockCustomerRepository),
		publisher: new(MockPublisher),
	}
	e.uow.On("Rollback", ctx).Return(nil).Maybe()
	e.uow.On("OrderRepository").Return(e.orders).Maybe()
	e.uow.On("DriverRepository").Return(e.drivers).Maybe()
	e.uow.On("CustomerRepository").Return(e.customers).Maybe()
	e.notifier = commands.NewNotifier(e.publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return e
}

func (e *env) assertNothingPublished(t *testing.T) {
	t.Helper()
	e.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func mustAddress(t *testing.T, v string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("address", v)
	require.NoError(t, err)
	return a
}

func mustMoney(t *testing.T, v float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(v)
	require.NoError(t, err)
	return m
}

// storedOrder returns an order as a repository would load it.
func storedOrder(t *testing.T, status order.Status, customerID kernel.UUID, driverID *kernel.UUID) *order.Order {
	t.Helper()
	ts := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:               kernel.NewUUID(),
		CustomerID:       customerID,
		DriverID:         driverID,
		Status:           status,
		Price:            mustMoney(t, 100),
		PickupLocation:   mustAddress(t, "Dock 4"),
		DeliveryLocation: mustAddress(t, "5 Mill St"),
		CreatedAt:        ts,
		UpdatedAt:        ts,
	})
	require.NoError(t, err)
	return o
}

func storedDriver(t *testing.T, status driver.Status, verified bool, count, sum int) *driver.Driver {
	t.Helper()
	name, _ := kernel.NewName("Driver")
	email, _ := kernel.NewEmail("driver@example.com")
	phone, _ := kernel.NewPhone("5550100200")
	summary, err := driver.NewRatingSummary(count, sum)
	require.NoError(t, err)
	d, err := driver.RestoreDriver(driver.Snapshot{
		ID: kernel.NewUUID(), Name: name, Email: email, Phone: phone, PasswordHash: "hash",
		Vehicle: driver.VehicleCar, Status: status, DocumentsVerified: verified, Rating: summary,
	})
	require.NoError(t, err)
	return d
}

func storedCustomer(t *testing.T, status customer.Status) *customer.Customer {
	t.Helper()
	name, _ := kernel.NewName("Customer")
	email, _ := kernel.NewEmail("customer@example.com")
	phone, _ := kernel.NewPhone("5550100200")
	c, err := customer.RestoreCustomer(customer.Snapshot{
		ID: kernel.NewUUID(), Name: name, Email: email, Phone: phone,
		Address: mustAddress(t, "1 Road"), PasswordHash: "hash", Status: status,
	})
	require.NoError(t, err)
	return c
}

func eventsWithStatus(status order.Status) any {
	return mock.MatchedBy(func(events []order.ChangedEvent) bool {
		return len(events) == 1 && events[0].Status == status
	})
}
