package driver

import (
	"logistics/internal/pkg/errs"
)

// Status is the account state of a driver as managed by admins.
type Status int

const (
	StatusUnknown Status = iota
	StatusActive
	StatusSuspended
	StatusBanned
)

var statusNames = map[Status]string{
	StatusActive:    "Active",
	StatusSuspended: "Suspended",
	StatusBanned:    "Banned",
}

// Statuses lists every valid driver status.
func Statuses() []Status {
	return []Status{StatusActive, StatusSuspended, StatusBanned}
}

// ParseStatus accepts the exact names returned by Status.String.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("driver status")
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("driver status")
	}
	return nil
}
