package ticket

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrTicketIsNotConstructed is returned when a Ticket was not created through NewTicket or RestoreTicket.
var ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")

// Contact is how support replies to the ticket author.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Ticket is a support request filed by any user about the marketplace.
type Ticket struct {
	id        kernel.UUID
	userID    kernel.UUID
	kind      Type
	subject   string
	message   string
	contact   Contact
	status    Status
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewTicket creates an Open ticket.
//
// Parameters:
//   - id: identifier of the new ticket
//   - userID: author; only the author reads and updates the ticket
//   - kind: one of Bug, Feature, General, Account
//   - subject, message: non-blank; subject is stored trimmed
//   - contact: name and a syntactically valid email are required, phone is optional
//   - now: creation time, stored in UTC
//
// Returns:
//   - *Ticket: an Open ticket
//   - error: every violation joined, all matching errs.ErrInvalidInput
//
// Example:
//
//	t, err := ticket.NewTicket(kernel.NewUUID(), requester.UserID, ticket.Bug,
//	    "Dashboard is empty", "No orders show up since Monday",
//	    ticket.Contact{Name: "Ann", Email: "ann@example.com"}, clock.Now())
func NewTicket(id, userID kernel.UUID, kind Type, subject, message string, contact Contact, now time.Time) (*Ticket, error) {
	var errList []error
	errList = append(errList, id.Validate(), kind.Validate())
	if err := userID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("userId", err))
	}
	if strings.TrimSpace(subject) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("subject"))
	}
	if strings.TrimSpace(message) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("message"))
	}
	if strings.TrimSpace(contact.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	switch {
	case strings.TrimSpace(contact.Email) == "":
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	default:
		if _, err := mail.ParseAddress(contact.Email); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("email", err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Ticket{
		id:            id,
		userID:        userID,
		kind:          kind,
		subject:       strings.TrimSpace(subject),
		message:       message,
		contact:       contact,
		status:        Open,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreTicket rebuilds a ticket loaded from storage.
func RestoreTicket(
	id, userID kernel.UUID, kind Type, subject, message string, contact Contact,
	status Status, createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), kind.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &Ticket{
		id:            id,
		userID:        userID,
		kind:          kind,
		subject:       subject,
		message:       message,
		contact:       contact,
		status:        status,
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Ticket was created through NewTicket or RestoreTicket.
func (t *Ticket) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTicketIsNotConstructed
	}
	return nil
}

// ID returns the ticket's unique identifier.
func (t *Ticket) ID() kernel.UUID {
	return t.id
}

// UserID returns the author of the ticket.
func (t *Ticket) UserID() kernel.UUID {
	return t.userID
}

// Type returns what the ticket is about.
func (t *Ticket) Type() Type {
	return t.kind
}

// Subject returns the trimmed subject line.
func (t *Ticket) Subject() string {
	return t.subject
}

// Message returns the body as submitted.
func (t *Ticket) Message() string {
	return t.message
}

// Contact returns how support replies to the author.
func (t *Ticket) Contact() Contact {
	return t.contact
}

// Status returns where the ticket is in its lifecycle.
func (t *Ticket) Status() Status {
	return t.status
}

// CreatedAt returns the creation time in UTC.
func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns the time of the last status change in UTC.
func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// IsOwnedBy reports whether userID filed the ticket.
func (t *Ticket) IsOwnedBy(userID kernel.UUID) bool {
	return t.userID.IsEqual(userID)
}

// ChangeStatus moves the ticket to next.
func (t *Ticket) ChangeStatus(next Status, now time.Time) error {
	if err := t.status.ValidateTransition(next); err != nil {
		return err
	}
	t.status = next
	t.updatedAt = now.UTC()
	return nil
}
