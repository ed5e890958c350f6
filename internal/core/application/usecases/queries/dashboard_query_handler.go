package queries

import (
	"context"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

type DashboardQueryHandler struct {
	orders    ports.OrderReader
	drivers   ports.DriverReader
	customers ports.CustomerReader
}

func NewDashboardQueryHandler(
	orders ports.OrderReader,
	drivers ports.DriverReader,
	customers ports.CustomerReader,
) DashboardQueryHandler {
	return DashboardQueryHandler{orders: orders, drivers: drivers, customers: customers}
}

func (h DashboardQueryHandler) Handle(ctx context.Context, query DashboardQuery) (DashboardView, error) {
	if err := query.Validate(); err != nil {
		return DashboardView{}, err
	}
	if err := query.Actor().RequireRole(auth.RoleAdmin); err != nil {
		return DashboardView{}, err
	}

	orderCounts, err := h.orders.CountOrdersByStatus(ctx)
	if err != nil {
		return DashboardView{}, err
	}
	revenue, err := h.orders.CompletedRevenue(ctx)
	if err != nil {
		return DashboardView{}, err
	}
	driverCounts, err := h.drivers.CountDriversByStatus(ctx)
	if err != nil {
		return DashboardView{}, err
	}
	customers, err := h.customers.CountCustomers(ctx)
	if err != nil {
		return DashboardView{}, err
	}

	view := DashboardView{
		OrdersByStatus:   make(map[string]int, len(order.Statuses())),
		CompletedRevenue: revenue,
		DriversByStatus:  make(map[string]int, len(driver.Statuses())),
		Customers:        customers,
	}
	for _, s := range order.Statuses() {
		view.OrdersByStatus[s.String()] = orderCounts[s]
		view.TotalOrders += orderCounts[s]
	}
	for _, s := range driver.Statuses() {
		view.DriversByStatus[s.String()] = driverCounts[s]
		view.TotalDrivers += driverCounts[s]
	}
	return view, nil
}
