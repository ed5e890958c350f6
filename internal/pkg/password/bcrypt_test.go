package password_test

import (
	"strings"
	"testing"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	require.NoError(t, h.Compare(hash, "correct horse"))
	err = h.Compare(hash, "wrong horse")
	require.Error(t, err)
	assert.True(t, password.IsMismatch(err))
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, password.Validate(""), errs.ErrValueIsRequired)
	require.ErrorIs(t, password.Validate("short"), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, password.Validate(strings.Repeat("x", password.MaxLength+1)), errs.ErrValueIsOutOfRange)
	require.NoError(t, password.Validate(strings.Repeat("x", password.MaxLength)))
	require.NoError(t, password.Validate(strings.Repeat("x", password.MinLength)))
}

func TestNewHasher_OutOfRangeCostUsesDefault(t *testing.T) {
	for _, cost := range []int{0, bcrypt.MaxCost + 1} {
		hash, err := password.NewHasher(cost).Hash("correct horse")
		require.NoError(t, err)

		got, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, got)
	}
}

func TestHasher_CompareMalformedHash(t *testing.T) {
	err := password.NewHasher(bcrypt.MinCost).Compare("not-a-bcrypt-hash", "correct horse")

	require.Error(t, err)
	assert.False(t, password.IsMismatch(err))
}
