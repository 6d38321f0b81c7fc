// Package errs provides the error taxonomy of the laundry marketplace.
//
// Input validation failures are reported as ValueIsRequiredError, ValueIsInvalidError
// or ValueIsOutOfRangeError; each unwraps to its own sentinel and also matches
// ErrInvalidInput. The remaining kinds are ObjectNotFoundError, ForbiddenError,
// InvalidTransitionError, ConflictError and UnavailableError.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is support
//
// The inbound HTTP adapter maps each sentinel to one status code.
package errs
