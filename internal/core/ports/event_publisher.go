package ports

import (
	"context"

	"logistics/internal/core/domain/model/order"
)

// EventPublisher delivers order events after the transaction that raised them has
// committed. Delivery is best effort; callers log a returned error and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.ChangedEvent) error
}
