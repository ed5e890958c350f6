package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places kept for prices.
const MoneyScale = 2

// MaxMoney is the largest amount a price may hold: twelve integer digits at MoneyScale,
// the capacity of the numeric(14,2) price column.
var MaxMoney = decimal.RequireFromString("999999999999.99")

// ErrMoneyIsNotConstructed is returned when a zero Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a non-negative amount rounded to MoneyScale decimal places.
// Amounts are decimal so prices and revenue sums stay exact.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates amount and rounds it half away from zero to MoneyScale places.
// Amounts above MaxMoney after rounding are rejected with ValueIsOutOfRangeError.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// MoneyFromFloat is a convenience for request payloads that carry prices as JSON numbers.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses a decimal string such as "100.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate returns ErrMoneyIsNotConstructed for a zero Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float for JSON rendering.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Add returns the sum of both amounts. Sums are not capped at MaxMoney.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// IsEqual compares amounts numerically, so 1.5 equals 1.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", amount.String()))
	}
	rounded := amount.Round(MoneyScale)
	if rounded.GreaterThan(MaxMoney) {
		return errs.NewValueIsOutOfRangeError("price", amount.String(), "0", MaxMoney.StringFixed(MoneyScale))
	}
	m.amount = rounded
	return nil
}
