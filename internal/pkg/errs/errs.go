package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput groups every input validation failure. ValueIsRequiredError,
	// ValueIsInvalidError and ValueIsOutOfRangeError all match it through errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
	ErrUnavailable       = errors.New("unavailable")
)

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprint(v), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports a missing aggregate. ID is rendered with %s.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError reports that no aggregate with id exists.
//
// Parameters:
//   - paramName: name of the identifier as the caller sent it, e.g. "orderId"
//   - id: the identifier, rendered with %s
//
// Example:
//
//	return nil, errs.NewObjectNotFoundError("orderId", id)
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause is NewObjectNotFoundError with the underlying lookup failure attached.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

// Error renders only the id unless a cause is attached.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

// Unwrap returns ErrObjectNotFound.
func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError reports that paramName broke a domain rule.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause reports that paramName broke a domain rule and
// says which one through cause.
//
// Example:
//
//	return errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%d is not greater than 0", count))
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

// Error renders "value is invalid: <param>" followed by the cause, if any.
func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

// Unwrap returns ErrValueIsInvalid.
func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// Is makes the error match ErrInvalidInput.
func (e *ValueIsInvalidError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError reports a value outside of [minValue, maxValue].
//
// Parameters:
//   - paramName: name of the field
//   - value, minValue, maxValue: rendered with fmt.Sprint, newlines flattened
//
// Example:
//
//	return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause is NewValueIsOutOfRangeError with a cause attached.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

// Error names the value, the field and both bounds.
func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

// Unwrap returns ErrValueIsOutOfRange.
func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// Is makes the error match ErrInvalidInput.
func (e *ValueIsOutOfRangeError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError reports that paramName was missing or blank.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause is NewValueIsRequiredError with a cause attached.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

// Error renders "value is required: <param>" followed by the cause, if any.
func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

// Unwrap returns ErrValueIsRequired.
func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// Is makes the error match ErrInvalidInput.
func (e *ValueIsRequiredError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ForbiddenError reports a requester acting outside of its rights.
type ForbiddenError struct {
	Action string
	Cause  error
}

// NewForbiddenError reports that the requester may not perform action.
//
// Example:
//
//	return errs.NewForbiddenError("only customers place orders")
func NewForbiddenError(action string) *ForbiddenError {
	return &ForbiddenError{Action: action}
}

// NewForbiddenErrorWithCause is NewForbiddenError with a cause attached.
func NewForbiddenErrorWithCause(action string, cause error) *ForbiddenError {
	return &ForbiddenError{Action: action, Cause: cause}
}

// Error renders "forbidden: <action>".
func (e *ForbiddenError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrForbidden, e.Action), e.Cause)
}

// Unwrap returns ErrForbidden.
func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidTransitionError reports a state change that the lifecycle does not allow.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

// NewInvalidTransitionError reports that entity cannot move from one status to another.
//
// Parameters:
//   - entity: "order" or "ticket"
//   - from, to: wire names of the statuses
//
// Example:
//
//	return errs.NewInvalidTransitionError("order", Delivered.String(), Pending.String())
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

// Error names the entity and both statuses.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To)
}

// Unwrap returns ErrInvalidTransition.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConflictError reports a lost race or a uniqueness violation.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError reports a lost compare-and-swap or a taken unique value of paramName.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause is NewConflictError with the store error attached.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

// Error renders "conflict: <param>" followed by the cause, if any.
func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, e.ParamName), e.Cause)
}

// Unwrap returns ErrConflict.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// UnavailableError wraps a failure of an outbound adapter.
type UnavailableError struct {
	Resource string
	Cause    error
}

// NewUnavailableError wraps a failure of resource ("postgres", "redis").
// The cause stays reachable through errors.Is and errors.As.
func NewUnavailableError(resource string, cause error) *UnavailableError {
	return &UnavailableError{Resource: resource, Cause: cause}
}

// Error names the resource and the cause.
func (e *UnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrUnavailable, e.Resource), e.Cause)
}

// Unwrap exposes both the sentinel and the adapter error.
func (e *UnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUnavailable}
	}
	return []error{ErrUnavailable, e.Cause}
}
