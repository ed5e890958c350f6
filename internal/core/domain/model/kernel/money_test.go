package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should round to cents", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.005")

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-0.01)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should accept the largest storable amount", func(t *testing.T) {
		m, err := kernel.MoneyFromString("999999999999.99")

		require.NoError(t, err)
		assert.True(t, m.Decimal().Equal(kernel.MaxMoney))
	})

	t.Run("should reject amounts above the storable maximum", func(t *testing.T) {
		_, err := kernel.MoneyFromString("10000000000000")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should reject amounts that round above the maximum", func(t *testing.T) {
		_, err := kernel.MoneyFromString("999999999999.995")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject garbage strings", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Add(t *testing.T) {
	a, _ := kernel.MoneyFromString("0.10")
	b, _ := kernel.MoneyFromString("0.20")
	expected, _ := kernel.MoneyFromString("0.3")

	sum := a.Add(b)

	require.NoError(t, sum.Validate())
	assert.True(t, sum.IsEqual(expected))
	assert.InDelta(t, 0.3, sum.Float64(), 1e-9)
}

func TestMoney_ZeroValue(t *testing.T) {
	var m kernel.Money

	require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
	require.NoError(t, kernel.ZeroMoney().Validate())
}
