package kernel

import (
	"net/mail"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// EmailMaxLength follows the practical SMTP path limit.
const EmailMaxLength = 254

// ErrEmailIsNotConstructed is returned when a zero Email is used.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail constructor")

// Email is a lower-cased login address. Uniqueness is enforced by the stores.
type Email struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

func NewEmail(value string) (Email, error) {
	e := Email{guard: guard.NewConstructorGuard()}
	if err := e.setValue(value); err != nil {
		return Email{}, err
	}
	return e, nil
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

func (e Email) String() string {
	return e.value
}

func (e *Email) setValue(value string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(value) > EmailMaxLength {
		return errs.NewValueIsOutOfRangeError("email length", len(value), 3, EmailMaxLength)
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	e.value = value
	return nil
}
