package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Assigned ──> InProgress ──> Completed
//	   │           │
//	   └───────────┴──> Cancelled
//
// Completed and Cancelled are terminal. A rating is an attribute of a Completed order,
// not a state of its own.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// Pending orders wait for a driver.
	Pending

	// Assigned orders have a driver who has not picked the cargo up yet.
	Assigned

	// InProgress orders are on the road and can no longer be cancelled.
	InProgress

	// Completed orders were delivered. Terminal.
	Completed

	// Cancelled orders were withdrawn before pickup. Terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:    "Pending",
	Assigned:   "Assigned",
	InProgress: "InProgress",
	Completed:  "Completed",
	Cancelled:  "Cancelled",
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Assigned, InProgress, Completed, Cancelled}
}

// ParseStatus converts a canonical status name (as stored and as sent over HTTP) into a Status.
// Matching is exact; "pending" or "in-transit" are rejected.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any out-of-range value.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name, or "Unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// next returns the only status advance may move to.
func (s Status) next() (Status, bool) {
	switch s {
	case Assigned:
		return InProgress, true
	case InProgress:
		return Completed, true
	default:
		return Unknown, false
	}
}

// Assign transitions Pending -> Assigned. Reassignment is not supported.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Assigned.String())
	}
	return Assigned, nil
}

// Advance accepts only the exact next status in Assigned -> InProgress -> Completed.
//
// Returns:
//   - (target, nil) when target is the successor of s
//   - (Unknown, InvalidTransitionError) otherwise, including from Pending and terminal states
func (s Status) Advance(target Status) (Status, error) {
	next, ok := s.next()
	if !ok || next != target {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return next, nil
}

// Cancel transitions Pending or Assigned -> Cancelled.
// In-flight orders cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Assigned {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// ValidateCanHaveDriver checks status/driver consistency:
//   - Pending orders never have a driver
//   - Assigned, InProgress and Completed orders always have one
//   - Cancelled orders keep whatever they had when cancelled
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	switch {
	case s == Pending && hasDriver:
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%s orders cannot have a driver", s))
	case (s == Assigned || s == InProgress || s == Completed) && !hasDriver:
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%s orders must have a driver", s))
	}
	return nil
}
