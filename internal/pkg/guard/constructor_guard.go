package guard

import "errors"

// ErrNotConstructed is the error Validate falls back to when it is given a nil error.
// A zero value therefore never validates silently, even when the caller has no
// dedicated sentinel of its own.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard records whether a value came out of its constructor. Value objects,
// aggregates, commands and queries embed one as an unexported field, and their
// Validate methods delegate to it.
//
// The zero ConstructorGuard is unconstructed. Only NewConstructorGuard produces a
// constructed one, and since the field is unexported, code outside the owning package
// cannot forge it with a struct literal. A literal such as kernel.Money{} or
// commands.RateOrderCommand{} is thus always rejected by Validate.
//
// Example usage:
//
//	var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")
//
//	type Address struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAddress(value string) (Address, error) {
//	    value = strings.TrimSpace(value)
//	    if value == "" {
//	        return Address{}, errs.NewValueIsRequiredError("address")
//	    }
//	    return Address{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (a Address) Validate() error {
//	    return a.guard.Validate(ErrAddressIsNotConstructed)
//	}
//
// Command handlers call Validate on the command before opening a unit of work, so a
// handler invoked with a zero command fails with the command's sentinel and touches
// no store.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Constructors set it as
// the last step, after every field has been validated.
//
// Example:
//
//	return Rating{value: value, guard: guard.NewConstructorGuard()}, nil
//
// Returns:
//   - A ConstructorGuard for which Validate returns nil
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate reports whether the owning value was built by its constructor.
//
// Parameters:
//   - notConstructed: the error to report for a zero value, usually the owner's
//     ErrXIsNotConstructed sentinel. May be nil.
//
// Example:
//
//	func (c CancelOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
//	}
//
// Returns:
//   - nil if the guard was created by NewConstructorGuard
//   - notConstructed if the guard is the zero value
//   - ErrNotConstructed if the guard is the zero value and notConstructed is nil
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed == nil {
		return ErrNotConstructed
	}
	return notConstructed
}
