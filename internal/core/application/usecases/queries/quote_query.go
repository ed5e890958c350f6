package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrQuoteQueryIsNotConstructed = errors.New(
	"QuoteQuery must be created via NewQuoteQuery constructor",
)

// QuoteQuery asks for the vehicle and price suggested for a load.
type QuoteQuery struct {
	weightKg   decimal.Decimal
	distanceKm decimal.Decimal

	guard guard.ConstructorGuard
}

func NewQuoteQuery(weightKg, distanceKm decimal.Decimal) (QuoteQuery, error) {
	var weightErr, distanceErr error
	if weightKg.IsNegative() {
		weightErr = errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, "unbounded")
	}
	if distanceKm.IsNegative() {
		distanceErr = errs.NewValueIsOutOfRangeError("distanceKm", distanceKm, 0, "unbounded")
	}
	if err := errors.Join(weightErr, distanceErr); err != nil {
		return QuoteQuery{}, err
	}

	return QuoteQuery{weightKg: weightKg, distanceKm: distanceKm, guard: guard.NewConstructorGuard()}, nil
}

func (q QuoteQuery) Validate() error {
	return q.guard.Validate(ErrQuoteQueryIsNotConstructed)
}

func (q QuoteQuery) WeightKg() decimal.Decimal   { return q.weightKg }
func (q QuoteQuery) DistanceKm() decimal.Decimal { return q.distanceKm }

type QuoteView struct {
	Vehicle string
	Price   kernel.Money
}
