package queries

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDashboardQueryIsNotConstructed = errors.New(
	"DashboardQuery must be created via NewDashboardQuery constructor",
)

// DashboardQuery collects the admin dashboard counters.
type DashboardQuery struct {
	actor auth.Actor
	guard guard.ConstructorGuard
}

func NewDashboardQuery(actor auth.Actor) DashboardQuery {
	return DashboardQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q DashboardQuery) Validate() error {
	return q.guard.Validate(ErrDashboardQueryIsNotConstructed)
}

func (q DashboardQuery) Actor() auth.Actor { return q.actor }

// DashboardView holds counters keyed by canonical status name. Every status is
// present, with zero when nothing is in it.
type DashboardView struct {
	OrdersByStatus   map[string]int
	TotalOrders      int
	CompletedRevenue kernel.Money
	DriversByStatus  map[string]int
	TotalDrivers     int
	Customers        int
}
