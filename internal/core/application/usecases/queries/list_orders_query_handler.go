package queries

import (
	"context"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// ListOrdersQueryHandler narrows non-admin listings to the actor's own orders.
// A customer or driver asking for somebody else's orders is denied rather than
// silently given an empty list.
type ListOrdersQueryHandler struct {
	reader ports.OrderReader
}

func NewListOrdersQueryHandler(reader ports.OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := ports.OrderFilter{
		CustomerID: query.CustomerID(),
		DriverID:   query.DriverID(),
		Statuses:   query.Statuses(),
	}

	actor := query.Actor()
	switch actor.Role {
	case auth.RoleAdmin:
	case auth.RoleCustomer:
		if !sameOrUnset(filter.CustomerID, actor.UserID) {
			return nil, auth.Denied("customers can only list their own orders")
		}
		id := actor.UserID
		filter.CustomerID = &id
	case auth.RoleDriver:
		if !sameOrUnset(filter.DriverID, actor.UserID) {
			return nil, auth.Denied("drivers can only list their own orders")
		}
		id := actor.UserID
		filter.DriverID = &id
	default:
		return nil, auth.Denied("role %q cannot list orders", actor.Role)
	}

	orders, err := h.reader.FindOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views, nil
}

func sameOrUnset(requested *kernel.UUID, own kernel.UUID) bool {
	return requested == nil || requested.IsEqual(own)
}
