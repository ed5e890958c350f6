package kernel

import (
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// MinRating is the lowest score a customer can give.
	MinRating = 1
	// MaxRating is the highest score a customer can give.
	MaxRating = 5
)

// ErrRatingIsNotConstructed is returned when a zero Rating is used.
var ErrRatingIsNotConstructed = errs.NewValueIsRequiredError("rating must be created via NewRating constructor")

// Rating is a customer's integer score for a delivered order, MinRating..MaxRating inclusive.
type Rating struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewRating returns a ValueIsOutOfRangeError for values outside 1..5.
func NewRating(value int) (Rating, error) {
	r := Rating{guard: guard.NewConstructorGuard()}
	if err := r.setValue(value); err != nil {
		return Rating{}, err
	}
	return r, nil
}

func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

func (r Rating) Value() int {
	return r.value
}

func (r *Rating) setValue(value int) error {
	if value < MinRating || value > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", value, MinRating, MaxRating)
	}
	r.value = value
	return nil
}
