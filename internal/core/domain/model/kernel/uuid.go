package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not built through one of the constructors.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, shops, tickets and users. It wraps github.com/google/uuid
// and is rendered as an opaque string outside of the core.
//
// The zero value is invalid and must be constructed using NewUUID, UUIDFromString,
// UUIDFromBytes or ParseID.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the forms understood by uuid.Parse (plain, braced, urn-prefixed, no hyphens).
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// ParseID parses an identifier received from a caller. Malformed and nil identifiers
// are reported as invalid input for paramName.
func ParseID(paramName, s string) (UUID, error) {
	if s == "" {
		return UUID{}, errs.NewValueIsRequiredError(paramName)
	}
	id, err := UUIDFromString(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	if err = id.Validate(); err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, as stored by the database adapters.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns a copy of the underlying uuid.UUID value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
