package shop

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"laundry/internal/pkg/errs"
)

// Weekdays lists the keys accepted in BusinessHours, Monday first.
func Weekdays() []string {
	return []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
}

// DayHours is an opening interval in local "HH:MM" notation.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// BusinessHours maps a weekday name to its opening interval. A missing day is closed.
type BusinessHours map[string]DayHours

// Validate checks weekday names, the HH:MM format and that each day opens before it closes.
func (h BusinessHours) Validate() error {
	var errList []error
	for day, hours := range h {
		if !slices.Contains(Weekdays(), day) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("businessHours",
				fmt.Errorf("%q is not a weekday", day)))
			continue
		}
		open, errOpen := time.Parse("15:04", hours.Open)
		closing, errClose := time.Parse("15:04", hours.Close)
		if errOpen != nil || errClose != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("businessHours."+day,
				fmt.Errorf("hours must use HH:MM, got %q-%q", hours.Open, hours.Close)))
			continue
		}
		if !open.Before(closing) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("businessHours."+day,
				fmt.Errorf("open %s is not before close %s", hours.Open, hours.Close)))
		}
	}
	return errors.Join(errList...)
}

// IsOpenOn reports whether the shop has hours for day.
func (h BusinessHours) IsOpenOn(day string) bool {
	_, ok := h[day]
	return ok
}

func (h BusinessHours) clone() BusinessHours {
	if h == nil {
		return nil
	}
	out := make(BusinessHours, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
