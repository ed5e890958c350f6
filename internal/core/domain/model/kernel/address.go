package kernel

import (
	"strings"
	"unicode/utf8"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// AddressMaxLength bounds pickup, delivery and customer addresses.
const AddressMaxLength = 255

// ErrAddressIsNotConstructed is returned when a zero Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Address is a free-form location such as "12 Harbour Rd, Pier 3". Distance and geocoding
// are out of scope, so the only rules are: non-blank after trimming and at most
// AddressMaxLength characters.
type Address struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewAddress trims value and validates it.
//
// Parameters:
//   - paramName: name reported in validation errors (e.g. "pickupLocation")
//   - value: raw address text
//
// Returns:
//   - Address: a constructed address
//   - error: ValueIsRequiredError for blank input, ValueIsOutOfRangeError for overlong input
func NewAddress(paramName, value string) (Address, error) {
	a := Address{guard: guard.NewConstructorGuard()}
	if err := a.setValue(paramName, value); err != nil {
		return Address{}, err
	}
	return a, nil
}

// Validate returns ErrAddressIsNotConstructed for a zero Address.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) String() string {
	return a.value
}

// IsEqual compares two addresses by their text.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

func (a *Address) setValue(paramName, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if n := utf8.RuneCountInString(value); n > AddressMaxLength {
		return errs.NewValueIsOutOfRangeError(paramName+" length", n, 1, AddressMaxLength)
	}
	a.value = value
	return nil
}
