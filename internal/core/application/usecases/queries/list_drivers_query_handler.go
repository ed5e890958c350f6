package queries

import (
	"context"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/ports"
)

type ListDriversQueryHandler struct {
	reader ports.DriverReader
}

func NewListDriversQueryHandler(reader ports.DriverReader) ListDriversQueryHandler {
	return ListDriversQueryHandler{reader: reader}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Actor().RequireRole(auth.RoleAdmin); err != nil {
		return nil, err
	}

	drivers, err := h.reader.FindDrivers(ctx, ports.DriverFilter{
		Statuses: query.Statuses(),
		Verified: query.Verified(),
	})
	if err != nil {
		return nil, err
	}

	views := make([]DriverView, 0, len(drivers))
	for _, d := range drivers {
		views = append(views, newDriverView(d))
	}
	return views, nil
}
