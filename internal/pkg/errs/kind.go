package errs

import "errors"

// Kind is the coarse classification of an error used at operation boundaries.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidInput
	KindInvalidTransition
	KindConflict
	KindStoreUnavailable
	KindNotAuthenticated
	KindPermissionDenied
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidInput:
		return "InvalidInput"
	case KindInvalidTransition:
		return "InvalidTransition"
	case KindConflict:
		return "Conflict"
	case KindStoreUnavailable:
		return "StoreUnavailable"
	case KindNotAuthenticated:
		return "NotAuthenticated"
	case KindPermissionDenied:
		return "PermissionDenied"
	default:
		return "Unknown"
	}
}

// KindOf classifies err. An error matching several kinds, such as a join, gets the kind
// listed first in the switch, whatever the join order: NotFound, InvalidTransition,
// Conflict, StoreUnavailable, NotAuthenticated, PermissionDenied, then InvalidInput.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrStoreUnavailable):
		return KindStoreUnavailable
	case errors.Is(err, ErrNotAuthenticated):
		return KindNotAuthenticated
	case errors.Is(err, ErrPermissionDenied):
		return KindPermissionDenied
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrValueIsRequired):
		return KindInvalidInput
	default:
		return KindUnknown
	}
}
