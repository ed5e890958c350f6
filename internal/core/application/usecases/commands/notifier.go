package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// Notifier publishes the events an order raised once its transaction has committed.
// Publication failures are logged and never fail the command.
type Notifier struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewNotifier returns a Notifier. A nil publisher disables publication.
func NewNotifier(publisher ports.EventPublisher, logger *slog.Logger) Notifier {
	return Notifier{publisher: publisher, logger: logger.With("component", "order-events")}
}

func (n Notifier) Notify(ctx context.Context, o *order.Order) {
	events := o.DomainEvents()
	o.ClearDomainEvents()
	if n.publisher == nil || len(events) == 0 {
		return
	}

	if err := n.publisher.Publish(ctx, events...); err != nil {
		n.logger.WarnContext(ctx, "failed to publish order events",
			"order_id", o.ID().String(),
			"status", o.Status().String(),
			"events", len(events),
			"error", err,
		)
	}
}
