package ticket

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status is the handling state of a support ticket. Closed is terminal; any
// other change between two different statuses is allowed.
type Status int

const (
	UnknownStatus Status = iota
	Open
	InProgress
	Resolved
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Open:       "open",
		InProgress: "in_progress",
		Resolved:   "resolved",
		Closed:     "closed",
	}
}

// StatusFromString parses the wire name of a ticket status.
//
// Returns:
//   - Status: the parsed status
//   - error: ValueIsInvalidError for an unknown name
//
// Example:
//
//	status, err := ticket.StatusFromString("in_progress") // InProgress
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid ticket status", s))
}

// Validate rejects UnknownStatus and values outside the declared set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid ticket status", s))
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

// ValidateTransition rejects leaving Closed and self-transitions.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s == Closed || s == next {
		return errs.NewInvalidTransitionError("ticket", s.String(), next.String())
	}
	return nil
}

// Type classifies what a ticket is about.
type Type int

const (
	UnknownType Type = iota
	Bug
	Feature
	General
	Account
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		Bug:     "bug",
		Feature: "feature",
		General: "general",
		Account: "account",
	}
}

// TypeFromString parses the wire name of a ticket type.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid ticket type", s))
}

// Validate rejects UnknownType and values outside the declared set.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid ticket type", t))
	}
	return nil
}

// String returns the wire name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
