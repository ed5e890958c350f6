package queries

import (
	"context"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/ports"
)

// GetOrderQueryHandler returns one order to an admin, the customer who booked it or
// the driver assigned to it.
type GetOrderQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderQueryHandler(reader ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.reader.GetOrder(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	actor := query.Actor()
	driverID := o.DriverID()
	switch {
	case actor.IsAdmin():
	case actor.Is(auth.RoleCustomer, o.CustomerID()):
	case driverID != nil && actor.Is(auth.RoleDriver, *driverID):
	default:
		return OrderView{}, auth.Denied("order %s belongs to another account", o.ID())
	}

	return newOrderView(o), nil
}
