package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order. A duplicate id is reported as errs.ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order only if the stored record still has the aggregate's
	// PersistedStatus and, for an order loaded unrated, still has no rating.
	// A record that no longer matches is reported as errs.ConflictError,
	// a missing record as errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOldestPending returns the Pending order with the earliest createdAt,
	// or errs.ObjectNotFoundError when there is none.
	GetOldestPending(ctx context.Context) (*order.Order, error)
}
