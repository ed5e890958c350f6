package queries

import (
	"context"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/ports"
)

type ListCustomersQueryHandler struct {
	reader ports.CustomerReader
}

func NewListCustomersQueryHandler(reader ports.CustomerReader) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{reader: reader}
}

func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Actor().RequireRole(auth.RoleAdmin); err != nil {
		return nil, err
	}

	customers, err := h.reader.FindCustomers(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, newCustomerView(c))
	}
	return views, nil
}
