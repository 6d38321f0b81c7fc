package shop

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status controls whether a shop is discoverable. Only Active shops appear in
// listings and proximity searches.
type Status int

const (
	Unknown Status = iota
	Active
	Inactive
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Active:      "active",
		Inactive:    "inactive",
		Maintenance: "maintenance",
	}
}

// StatusFromString parses the wire name of a shop status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid shop status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Active, Inactive, Maintenance.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - ValueIsInvalidError if the status is invalid
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid shop status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Example:
//
//	fmt.Println(shop.Maintenance) // Output: "maintenance"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
