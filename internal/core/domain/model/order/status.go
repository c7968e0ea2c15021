package order

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// Status is the kitchen lifecycle state of an order.
//
//	Pending ──> Preparing ──> Ready
//	   └──────────────────────^
//
// Statuses are ordered; a transition may skip forward but never go back.
type Status int

const (
	// Unknown is the zero value and is never a valid status.
	Unknown Status = iota

	// Pending is the initial status. Only pending orders can be edited.
	Pending

	// Preparing means the kitchen has started on the order.
	Preparing

	// Ready is the final status.
	Ready
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Preparing: "preparing",
	Ready:     "ready",
}

// Statuses returns the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, Ready}
}

// ParseStatus accepts the wire name of a status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of pending, preparing, ready", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Preparing, Ready.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - errs.ValueIsInvalidError naming "status" otherwise
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsEditable reports whether an order in this status accepts content edits.
//
// Returns:
//   - true for Pending
//   - false for Preparing, Ready and invalid values
//
// Example:
//
//	if !o.Status().IsEditable() {
//		return errs.NewEditConflictError("order", o.ID(), o.Status().String())
//	}
func (s Status) IsEditable() bool {
	return s == Pending
}

// ChangeTo returns next if it is reachable from s. Moving to the current status is
// allowed and changes nothing; moving backwards is a StatusTransitionError.
func (s Status) ChangeTo(next Status) (Status, error) {
	if err := errors.Join(s.Validate(), next.Validate()); err != nil {
		return s, err
	}
	if next < s {
		return s, errs.NewStatusTransitionError(s.String(), next.String())
	}
	return next, nil
}
