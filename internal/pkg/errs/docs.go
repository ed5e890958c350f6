// Package errs provides standardized error types for the logistics service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: an order, driver or customer id could not be resolved
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input violates a constraint
//   - InvalidTransitionError: the order state machine rejected a status change
//   - ConflictError: a guarded write found its precondition changed, or a unique value is taken
//   - StoreUnavailableError: the backing store failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf maps any error onto the coarse Kind taxonomy used by the HTTP adapter
// to choose a status code and a single user-facing message.
package errs
