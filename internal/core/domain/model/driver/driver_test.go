package driver_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	name, err := kernel.NewName("Dana Scully")
	require.NoError(t, err)
	email, err := kernel.NewEmail("dana@example.com")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+1 555 0100 200")
	require.NoError(t, err)

	d, err := driver.NewDriver(kernel.NewUUID(), name, email, phone, driver.VehicleVan, "$2a$10$hash")
	require.NoError(t, err)
	return d
}

func rating(t *testing.T, v int) kernel.Rating {
	t.Helper()
	r, err := kernel.NewRating(v)
	require.NoError(t, err)
	return r
}

func TestNewDriver(t *testing.T) {
	t.Run("should start active, unverified and unrated", func(t *testing.T) {
		d := newDriver(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, driver.StatusActive, d.Status())
		assert.False(t, d.DocumentsVerified())
		assert.False(t, d.IsEligible())
		assert.Equal(t, 0, d.Rating().Count())
		assert.InDelta(t, 0.0, d.Rating().Average(), 1e-9)
		assert.Equal(t, driver.VehicleVan, d.Vehicle())
		assert.Equal(t, "dana@example.com", d.Email().String())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.UUID{}, kernel.Name{}, kernel.Email{}, kernel.Phone{}, driver.VehicleUnknown, "")

		require.Error(t, err)
		assert.Nil(t, d)
		require.ErrorIs(t, err, kernel.ErrNameIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrEmailIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrPhoneIsNotConstructed)
		require.ErrorIs(t, err, driver.ErrPasswordHashIsRequired)
		assert.Contains(t, err.Error(), "vehicle")
	})
}

func TestDriver_Eligibility(t *testing.T) {
	d := newDriver(t)
	require.ErrorIs(t, d.ValidateEligible(), driver.ErrDriverIsNotEligible)

	d.VerifyDocuments()
	require.NoError(t, d.ValidateEligible())

	for _, status := range []driver.Status{driver.StatusSuspended, driver.StatusBanned} {
		require.NoError(t, d.ChangeStatus(status))
		err := d.ValidateEligible()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, driver.ErrDriverIsNotEligible)
	}

	require.NoError(t, d.ChangeStatus(driver.StatusActive))
	assert.True(t, d.IsEligible())
}

func TestDriver_ChangeStatus(t *testing.T) {
	t.Run("should reject an unknown status", func(t *testing.T) {
		d := newDriver(t)

		require.ErrorIs(t, d.ChangeStatus(driver.StatusUnknown), errs.ErrValueIsInvalid)
		assert.Equal(t, driver.StatusActive, d.Status())
	})

	t.Run("should not touch the record when the status is unchanged", func(t *testing.T) {
		start := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
		current := start
		defer driver.SetNow(func() time.Time { return current })()

		d := newDriver(t)
		current = start.Add(time.Hour)

		require.NoError(t, d.ChangeStatus(driver.StatusActive))
		assert.Equal(t, start, d.UpdatedAt())

		require.NoError(t, d.ChangeStatus(driver.StatusSuspended))
		assert.Equal(t, current, d.UpdatedAt())
	})
}

func TestDriver_AddRating(t *testing.T) {
	t.Run("should fold ratings into the summary", func(t *testing.T) {
		d := newDriver(t)

		require.NoError(t, d.AddRating(rating(t, 4)))
		require.NoError(t, d.AddRating(rating(t, 4)))
		assert.InDelta(t, 4.0, d.Rating().Average(), 1e-9)
		assert.Equal(t, 2, d.Rating().Count())

		require.NoError(t, d.AddRating(rating(t, 5)))
		assert.Equal(t, 3, d.Rating().Count())
		assert.Equal(t, 13, d.Rating().Sum())
		assert.InDelta(t, 4.333, d.Rating().Average(), 0.001)
	})

	t.Run("should reject an unconstructed rating", func(t *testing.T) {
		d := newDriver(t)

		require.ErrorIs(t, d.AddRating(kernel.Rating{}), kernel.ErrRatingIsNotConstructed)
		assert.Equal(t, 0, d.Rating().Count())
	})
}

func TestDriver_Persisted(t *testing.T) {
	d := newDriver(t)
	d.MarkPersisted()

	d.VerifyDocuments()
	require.NoError(t, d.AddRating(rating(t, 3)))

	assert.False(t, d.PersistedDocumentsVerified())
	assert.Equal(t, 0, d.PersistedRatingCount())
	assert.Equal(t, driver.StatusActive, d.PersistedStatus())

	d.MarkPersisted()
	assert.True(t, d.PersistedDocumentsVerified())
	assert.Equal(t, 1, d.PersistedRatingCount())
}

func TestRestoreDriver(t *testing.T) {
	src := newDriver(t)
	summary, err := driver.NewRatingSummary(2, 8)
	require.NoError(t, err)

	s := driver.Snapshot{
		ID:                src.ID(),
		Name:              src.Name(),
		Email:             src.Email(),
		Phone:             src.Phone(),
		PasswordHash:      src.PasswordHash(),
		Vehicle:           driver.VehicleTruck,
		Status:            driver.StatusSuspended,
		DocumentsVerified: true,
		Rating:            summary,
		CreatedAt:         src.CreatedAt(),
		UpdatedAt:         src.UpdatedAt(),
	}

	d, err := driver.RestoreDriver(s)
	require.NoError(t, err)
	assert.Equal(t, driver.StatusSuspended, d.PersistedStatus())
	assert.Equal(t, 2, d.PersistedRatingCount())
	assert.True(t, d.PersistedDocumentsVerified())
	assert.InDelta(t, 4.0, d.Rating().Average(), 1e-9)

	s.Status = driver.StatusUnknown
	_, err = driver.RestoreDriver(s)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
