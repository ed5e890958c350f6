package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrDispatchPendingOrderCommandIsNotConstructed = errors.New(
	"DispatchPendingOrderCommand must be created via NewDispatchPendingOrderCommand constructor",
)

// DispatchPendingOrderCommand assigns the oldest Pending order to the best free driver.
// It is issued by the dispatch job rather than by a user.
//
// Example:
//
//	cmd := NewDispatchPendingOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoPendingOrder) {
//	    // nothing to do this tick
//	}
type DispatchPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewDispatchPendingOrderCommand() DispatchPendingOrderCommand {
	return DispatchPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c DispatchPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingOrderCommandIsNotConstructed)
}
