package queries

import (
	"context"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/ports"
)

// GetDriverQueryHandler lets admins read any driver and drivers read their own profile.
type GetDriverQueryHandler struct {
	reader ports.DriverReader
}

func NewGetDriverQueryHandler(reader ports.DriverReader) GetDriverQueryHandler {
	return GetDriverQueryHandler{reader: reader}
}

func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverView, error) {
	if err := query.Validate(); err != nil {
		return DriverView{}, err
	}

	actor := query.Actor()
	if !actor.IsAdmin() && !actor.Is(auth.RoleDriver, query.DriverID()) {
		return DriverView{}, auth.Denied("drivers can only read their own profile")
	}

	d, err := h.reader.GetDriver(ctx, query.DriverID())
	if err != nil {
		return DriverView{}, err
	}
	return newDriverView(d), nil
}
