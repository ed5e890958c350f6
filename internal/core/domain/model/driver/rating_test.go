package driver_test

import (
	"testing"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRatingSummary(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		sum     int
		wantErr error
		average float64
	}{
		{name: "empty", count: 0, sum: 0, average: 0},
		{name: "two fours", count: 2, sum: 8, average: 4},
		{name: "all fives", count: 3, sum: 15, average: 5},
		{name: "negative count", count: -1, sum: 0, wantErr: errs.ErrValueIsOutOfRange},
		{name: "sum too small", count: 2, sum: 1, wantErr: errs.ErrValueIsInvalid},
		{name: "sum too large", count: 1, sum: 6, wantErr: errs.ErrValueIsInvalid},
		{name: "sum without count", count: 0, sum: 3, wantErr: errs.ErrValueIsInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := driver.NewRatingSummary(tt.count, tt.sum)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.average, r.Average(), 1e-9)
		})
	}
}

func TestParseVehicleAndStatus(t *testing.T) {
	for _, v := range driver.Vehicles() {
		parsed, err := driver.ParseVehicle(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	for _, s := range driver.Statuses() {
		parsed, err := driver.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := driver.ParseVehicle("bike")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = driver.ParseStatus("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
