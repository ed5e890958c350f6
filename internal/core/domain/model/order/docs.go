// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root tracking a transport request from booking to delivery
//   - Status: the state machine Pending -> Assigned -> InProgress -> Completed,
//     with Pending|Assigned -> Cancelled
//   - ChangedEvent: raised on creation and on every status or rating change
//
// Key business rules:
//   - An order has no driver while Pending and keeps one from Assigned onwards
//   - advance only accepts the exact next status
//   - In-flight orders (InProgress) cannot be cancelled
//   - A Completed order can be rated once, 1..5
//   - Completed and Cancelled are terminal; orders are never deleted
package order
