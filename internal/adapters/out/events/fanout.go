package events

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// FanOut hands every batch to all of its publishers. One failing publisher does not
// stop the others; their errors are joined.
type FanOut struct {
	publishers []ports.EventPublisher
}

func NewFanOut(publishers ...ports.EventPublisher) *FanOut {
	kept := make([]ports.EventPublisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return &FanOut{publishers: kept}
}

func (f *FanOut) Publish(ctx context.Context, events ...order.ChangedEvent) error {
	var errList []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, events...); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
