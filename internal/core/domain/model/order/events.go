package order

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// ChangedEvent is raised whenever an order is created or changes status or rating.
// It is published after the surrounding transaction commits.
type ChangedEvent struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	DriverID   *kernel.UUID
	Status     Status
	Rating     int
	Price      kernel.Money
	OccurredAt time.Time
}

func newChangedEvent(o *Order) ChangedEvent {
	e := ChangedEvent{
		OrderID:    o.id,
		CustomerID: o.customerID,
		DriverID:   o.DriverID(),
		Status:     o.status,
		Price:      o.price,
		OccurredAt: o.updatedAt,
	}
	if o.rating != nil {
		e.Rating = o.rating.Value()
	}
	return e
}
