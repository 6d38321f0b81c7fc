package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
//
// State transitions:
//
//	Pending ──> Accepted ──> PickedUp ──> InProgress ──> Completed ──> Delivered
//	   │           │            │             │
//	   └───────────┴────────────┴─────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal. Self-transitions are not allowed.
// The table returned by getTransitions is the only place the graph is defined.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status; the shop has not reacted yet.
	Pending

	Accepted
	PickedUp
	InProgress

	// Completed means the laundry is ready to be returned to the customer.
	Completed

	Delivered
	Cancelled
)

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, PickedUp, InProgress, Completed, Delivered, Cancelled}
}

// getStatusStrings returns the wire names used by the API and the database.
func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Accepted:   "accepted",
		PickedUp:   "pickedUp",
		InProgress: "inProgress",
		Completed:  "completed",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[Status][]Status{
		Pending:    {Accepted, Cancelled},
		Accepted:   {PickedUp, Cancelled},
		PickedUp:   {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {Delivered},
	}
}

// StatusFromString parses a wire name such as "pickedUp".
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the seven lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(getTransitions()[s]) == 0
}

// CanTransitionTo reports whether the edge s -> next exists.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s in one step.
func (s Status) NextStatuses() []Status {
	next := getTransitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// ValidateTransition returns an InvalidTransitionError when s -> next is not an edge.
// An invalid target is reported as invalid input instead.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(next) {
		return errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return nil
}
