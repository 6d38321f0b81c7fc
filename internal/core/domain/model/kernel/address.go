package kernel

import (
	"errors"
	"strings"

	"laundry/internal/pkg/errs"
)

// Address is the structured postal address used for shop locations and order pickups.
// Lat and Lng are optional hints supplied by the client; they are not geocoded.
type Address struct {
	Street       string   `json:"street"`
	City         string   `json:"city"`
	State        string   `json:"state,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	Country      string   `json:"country,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// Validate requires street and city and checks the optional coordinates.
func (a Address) Validate(paramName string) error {
	var errList []error
	if strings.TrimSpace(a.Street) == "" {
		errList = append(errList, errs.NewValueIsRequiredError(paramName+".street"))
	}
	if strings.TrimSpace(a.City) == "" {
		errList = append(errList, errs.NewValueIsRequiredError(paramName+".city"))
	}
	if a.Lat != nil && !(*a.Lat >= MinLatitude && *a.Lat <= MaxLatitude) {
		errList = append(errList, errs.NewValueIsOutOfRangeError(paramName+".lat", *a.Lat, MinLatitude, MaxLatitude))
	}
	if a.Lng != nil && !(*a.Lng >= MinLongitude && *a.Lng <= MaxLongitude) {
		errList = append(errList, errs.NewValueIsOutOfRangeError(paramName+".lng", *a.Lng, MinLongitude, MaxLongitude))
	}
	return errors.Join(errList...)
}

// String joins the non-empty postal fields with commas.
func (a Address) String() string {
	parts := []string{a.Street, a.City, a.State, a.PostalCode, a.Country}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
