package queries

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders, newest first. Every filter is optional; an empty
// query returns everything the actor may see.
//
// Example:
//
//	query, err := NewListOrdersQuery(actor, nil, nil, []string{"Pending", "Assigned"})
//	if err != nil {
//	    return fmt.Errorf("invalid filter: %w", err)
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actor      auth.Actor
	customerID *kernel.UUID
	driverID   *kernel.UUID
	statuses   []order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(
	actor auth.Actor,
	customerID *kernel.UUID,
	driverID *kernel.UUID,
	statuses []string,
) (ListOrdersQuery, error) {
	parsed := make([]order.Status, 0, len(statuses))
	var parseErrs []error
	for _, s := range statuses {
		status, err := order.ParseStatus(s)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		parsed = append(parsed, status)
	}
	if err := errors.Join(parseErrs...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor:      actor,
		customerID: customerID,
		driverID:   driverID,
		statuses:   parsed,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() auth.Actor        { return q.actor }
func (q ListOrdersQuery) CustomerID() *kernel.UUID { return q.customerID }
func (q ListOrdersQuery) DriverID() *kernel.UUID   { return q.driverID }
func (q ListOrdersQuery) Statuses() []order.Status { return q.statuses }
