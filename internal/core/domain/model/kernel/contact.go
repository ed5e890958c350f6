package kernel

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	NameMaxLength  = 100
	PhoneMinDigits = 7
	PhoneMaxDigits = 15
)

var (
	ErrNameIsNotConstructed  = errs.NewValueIsRequiredError("name must be created via NewName constructor")
	ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone constructor")
)

var phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9 ()-]*[0-9]$`)

// Name is the display name of a customer or driver.
type Name struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

func NewName(value string) (Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Name{}, errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(value); n > NameMaxLength {
		return Name{}, errs.NewValueIsOutOfRangeError("name length", n, 1, NameMaxLength)
	}
	return Name{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (n Name) Validate() error {
	return n.guard.Validate(ErrNameIsNotConstructed)
}

func (n Name) String() string {
	return n.value
}

// Phone is a contact number. It is stored as typed, after trimming, and must hold
// between PhoneMinDigits and PhoneMaxDigits digits.
type Phone struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

func NewPhone(value string) (Phone, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(value) {
		return Phone{}, errs.NewValueIsInvalidError("phone")
	}
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < PhoneMinDigits || digits > PhoneMaxDigits {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", digits, PhoneMinDigits, PhoneMaxDigits)
	}
	return Phone{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

func (p Phone) String() string {
	return p.value
}
