package kernel

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"
)

// Role is the closed set of actor kinds that can call the core.
type Role int

const (
	UnknownRole Role = iota
	Customer
	ShopOwner
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Customer:  "customer",
		ShopOwner: "shopOwner",
	}
}

// RoleFromString parses the wire name of a role ("customer" or "shopOwner").
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// String returns the wire name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects UnknownRole and values outside the declared set.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Requester is the identity every core operation is evaluated against.
// It is resolved by the inbound adapter from a verified token.
type Requester struct {
	UserID UUID
	Role   Role
}

// NewRequester creates the identity of a caller.
//
// Parameters:
//   - userID: identifier taken from the verified token
//   - role: Customer or ShopOwner
//
// Returns:
//   - Requester: the identity
//   - error: joined validation errors of userID and role
//
// Example:
//
//	r, err := kernel.NewRequester(userID, kernel.Customer)
func NewRequester(userID UUID, role Role) (Requester, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return Requester{}, err
	}
	return Requester{UserID: userID, Role: role}, nil
}

// IsCustomer reports whether the requester acts as a customer.
func (r Requester) IsCustomer() bool {
	return r.Role == Customer
}

// IsShopOwner reports whether the requester acts as a shop owner.
func (r Requester) IsShopOwner() bool {
	return r.Role == ShopOwner
}

// Validate rejects zero requesters.
func (r Requester) Validate() error {
	return errors.Join(r.UserID.Validate(), r.Role.Validate())
}
