// Package guard provides ConstructorGuard, the marker that tells a value built by its
// constructor apart from a zero value.
//
// Every type with invariants in the logistics service embeds a guard: the kernel value
// objects (UUID, Email, Money, Rating, ...), the Order, Driver and Customer aggregates,
// and the application commands and queries. Their Validate methods return the type's
// own ErrXIsNotConstructed sentinel when the guard is unset.
package guard
