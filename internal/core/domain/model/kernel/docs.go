// Package kernel provides the shared value objects of the logistics domain.
//
// The package includes:
//   - UUID: identifier of orders, drivers, customers and sessions
//   - Address: pickup, delivery and customer address text
//   - Money: non-negative decimal price
//   - Rating: a 1..5 customer score
//   - Email: normalised login address
//
// All value objects are immutable, reject their zero value through Validate,
// and report violations with the typed errors of package errs.
package kernel
