package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"
	"laundry/internal/pkg/guard"
)

// ErrCreateTicketCommandIsNotConstructed is returned when a CreateTicketCommand
// was not created through NewCreateTicketCommand.
var ErrCreateTicketCommandIsNotConstructed = errors.New(
	"CreateTicketCommand must be created via NewCreateTicketCommand constructor",
)

// CreateTicketCommand files a support ticket on behalf of the requester.
type CreateTicketCommand struct { //nolint:recvcheck //using for validation
	requester kernel.Requester
	kind      ticket.Type
	subject   string
	message   string
	contact   ticket.Contact

	guard guard.ConstructorGuard
}

// NewCreateTicketCommand creates a command to file a support ticket.
// Subject, message and contact are validated by the ticket aggregate when the
// command is handled.
//
// Parameters:
//   - requester: the authenticated author
//   - kind: ticket category
//   - subject: short summary
//   - message: full description
//   - contact: email and optional phone for the reply
//
// Returns:
//   - CreateTicketCommand: the command ready for CreateTicketCommandHandler
//   - error: joined validation errors of requester and kind
//
// Example:
//
//	cmd, err := commands.NewCreateTicketCommand(requester, ticket.TypeOrderIssue,
//		"Missing shirt", "One shirt was not returned", contact)
func NewCreateTicketCommand(
	requester kernel.Requester, kind ticket.Type, subject, message string, contact ticket.Contact,
) (CreateTicketCommand, error) {
	if err := errors.Join(requester.Validate(), kind.Validate()); err != nil {
		return CreateTicketCommand{}, err
	}
	return CreateTicketCommand{
		requester: requester,
		kind:      kind,
		subject:   subject,
		message:   message,
		contact:   contact,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through NewCreateTicketCommand.
// Returns ErrCreateTicketCommandIsNotConstructed if validation fails.
func (c CreateTicketCommand) Validate() error {
	return c.guard.Validate(ErrCreateTicketCommandIsNotConstructed)
}

// Requester returns who issued the command.
func (c CreateTicketCommand) Requester() kernel.Requester {
	return c.requester
}

// Type returns the ticket type.
func (c CreateTicketCommand) Type() ticket.Type {
	return c.kind
}

// Subject returns the ticket subject.
func (c CreateTicketCommand) Subject() string {
	return c.subject
}

// Message returns the ticket body.
func (c CreateTicketCommand) Message() string {
	return c.message
}

// Contact returns how support replies to the author.
func (c CreateTicketCommand) Contact() ticket.Contact {
	return c.contact
}
