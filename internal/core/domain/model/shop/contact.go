package shop

import (
	"net/mail"
	"strings"

	"laundry/internal/pkg/errs"
)

// ContactInfo is how customers reach a shop. At least one channel is required.
type ContactInfo struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Validate requires a phone or an email, and a parsable email when one is set.
func (c ContactInfo) Validate() error {
	if strings.TrimSpace(c.Phone) == "" && strings.TrimSpace(c.Email) == "" {
		return errs.NewValueIsRequiredError("contactInfo")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("contactInfo.email", err)
		}
	}
	return nil
}
