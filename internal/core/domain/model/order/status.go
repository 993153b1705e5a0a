package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyCancelled is the rule violated when cancelling an order
	// that already carries a cancellation record.
	ErrOrderAlreadyCancelled = errors.New("order is already cancelled")

	// ErrCancellationWindowExpired is the rule violated when a customer
	// attempts cancellation past the grace window.
	ErrCancellationWindowExpired = errors.New("customer cancellation window has expired")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit adjacency table so that the
// staff-driven progression path can only walk legal forward edges.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	Pending

	// Accepted indicates store staff have accepted the order.
	Accepted

	// InProgress indicates the order is being prepared.
	InProgress

	// Completed indicates the order has been fulfilled.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a terminal state, reachable only through Order.Cancel.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Accepted:   "ACCEPTED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Accepted:   "ACCEPTED",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// progressions is the adjacency table of legal staff-driven transitions.
// Cancelled is deliberately absent as a target: cancellation has its own
// path that also records the cancelling actor.
func progressions() map[Status]Status {
	return map[Status]Status{
		Pending:    Accepted,
		Accepted:   InProgress,
		InProgress: Completed,
	}
}

// StatusFromString parses a status from its canonical upper-case name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ProgressTo transitions the status along the staff-driven progression path.
//
// Legal transitions are exactly the adjacency-table edges:
//   - Pending -> Accepted
//   - Accepted -> InProgress
//   - InProgress -> Completed
//
// Any other pair is rejected: terminal sources, skipped states
// (e.g. Pending -> Completed), re-entry, and Cancelled as a target.
//
// Returns the new status, or an InvalidStateError describing the rejected
// transition.
func (s Status) ProgressTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if next, ok := progressions()[s]; ok && next == target {
		return target, nil
	}

	return Unknown, errs.NewInvalidStateErrorWithCause("order status",
		fmt.Errorf("transition from %s to %s is not allowed", s, target))
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status. Cancelling an already cancelled order
// fails with ErrOrderAlreadyCancelled; a completed order cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s == Cancelled {
		return Unknown, errs.NewInvalidStateErrorWithCause("order status", ErrOrderAlreadyCancelled)
	}
	if s == Completed {
		return Unknown, errs.NewInvalidStateErrorWithCause("order status",
			fmt.Errorf("transition from %s to %s is not allowed", s, Cancelled))
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	return Cancelled, nil
}
