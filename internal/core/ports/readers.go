package ports

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderFilter narrows an order listing. Zero fields do not filter.
type OrderFilter struct {
	CustomerID *kernel.UUID
	DriverID   *kernel.UUID
	Statuses   []order.Status
}

// OrderReader is the read side used by queries. Listings are sorted by createdAt,
// newest first.
type OrderReader interface {
	FindOrders(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
	GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error)
	CountOrdersByStatus(ctx context.Context) (map[order.Status]int, error)
	// CompletedRevenue sums the prices of Completed orders.
	CompletedRevenue(ctx context.Context) (kernel.Money, error)
}

// DriverFilter narrows a driver listing. Zero fields do not filter.
type DriverFilter struct {
	Statuses []driver.Status
	Verified *bool
}

// DriverReader lists drivers sorted by createdAt, newest first.
type DriverReader interface {
	FindDrivers(ctx context.Context, filter DriverFilter) ([]*driver.Driver, error)
	GetDriver(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
	CountDriversByStatus(ctx context.Context) (map[driver.Status]int, error)
}

// CustomerReader lists customers sorted by createdAt, newest first.
type CustomerReader interface {
	FindCustomers(ctx context.Context) ([]*customer.Customer, error)
	CountCustomers(ctx context.Context) (int, error)
}
