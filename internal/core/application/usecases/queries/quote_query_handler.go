package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

// QuoteQueryHandler needs no store; prices come from the static tariff table.
type QuoteQueryHandler struct {
	advisor services.VehicleAdvisor
}

func NewQuoteQueryHandler() QuoteQueryHandler {
	return QuoteQueryHandler{advisor: services.NewVehicleAdvisor()}
}

func (h QuoteQueryHandler) Handle(_ context.Context, query QuoteQuery) (QuoteView, error) {
	if err := query.Validate(); err != nil {
		return QuoteView{}, err
	}

	quote, err := h.advisor.Quote(query.WeightKg(), query.DistanceKm())
	if err != nil {
		return QuoteView{}, err
	}
	return QuoteView{Vehicle: quote.Vehicle.String(), Price: quote.Price}, nil
}
