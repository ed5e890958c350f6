package customer_test

import (
	"testing"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	name, err := kernel.NewName("Fox Mulder")
	require.NoError(t, err)
	email, err := kernel.NewEmail("Fox@Example.com")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("555 0100 300")
	require.NoError(t, err)
	address, err := kernel.NewAddress("address", "2630 Hegal Place")
	require.NoError(t, err)

	c, err := customer.NewCustomer(kernel.NewUUID(), name, email, phone, address, "$2a$10$hash")
	require.NoError(t, err)
	return c
}

func TestNewCustomer(t *testing.T) {
	c := newCustomer(t)

	require.NoError(t, c.Validate())
	assert.Equal(t, customer.StatusActive, c.Status())
	assert.Equal(t, "fox@example.com", c.Email().String())
	require.NoError(t, c.ValidateCanBook())
}

func TestNewCustomer_Invalid(t *testing.T) {
	c, err := customer.NewCustomer(kernel.NewUUID(), kernel.Name{}, kernel.Email{}, kernel.Phone{}, kernel.Address{}, "")

	require.Error(t, err)
	assert.Nil(t, c)
	require.ErrorIs(t, err, customer.ErrPasswordHashIsRequired)
	assert.Contains(t, err.Error(), "address")
}

func TestCustomer_ChangeStatus(t *testing.T) {
	c := newCustomer(t)
	c.MarkPersisted()

	require.NoError(t, c.ChangeStatus(customer.StatusSuspended))
	assert.Equal(t, customer.StatusActive, c.PersistedStatus())

	err := c.ValidateCanBook()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, customer.ErrCustomerIsSuspended)

	require.ErrorIs(t, c.ChangeStatus(customer.StatusUnknown), errs.ErrValueIsInvalid)
	assert.Equal(t, customer.StatusSuspended, c.Status())
}

func TestRestoreCustomer(t *testing.T) {
	src := newCustomer(t)
	s := customer.Snapshot{
		ID:           src.ID(),
		Name:         src.Name(),
		Email:        src.Email(),
		Phone:        src.Phone(),
		Address:      src.Address(),
		PasswordHash: src.PasswordHash(),
		Status:       customer.StatusSuspended,
		CreatedAt:    src.CreatedAt(),
		UpdatedAt:    src.UpdatedAt(),
	}

	c, err := customer.RestoreCustomer(s)
	require.NoError(t, err)
	assert.Equal(t, customer.StatusSuspended, c.PersistedStatus())

	_, err = customer.ParseStatus("Banned")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
