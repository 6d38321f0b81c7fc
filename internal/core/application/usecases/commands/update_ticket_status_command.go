package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"
	"laundry/internal/pkg/guard"
)

// ErrUpdateTicketStatusCommandIsNotConstructed is returned when an
// UpdateTicketStatusCommand was not created through its constructor.
var ErrUpdateTicketStatusCommandIsNotConstructed = errors.New(
	"UpdateTicketStatusCommand must be created via NewUpdateTicketStatusCommand constructor",
)

// UpdateTicketStatusCommand changes the status of a ticket the requester filed.
type UpdateTicketStatusCommand struct { //nolint:recvcheck //using for validation
	requester kernel.Requester
	ticketID  kernel.UUID
	status    ticket.Status

	guard guard.ConstructorGuard
}

// NewUpdateTicketStatusCommand creates the command. Returns the joined
// validation errors of its arguments.
func NewUpdateTicketStatusCommand(
	requester kernel.Requester, ticketID kernel.UUID, status ticket.Status,
) (UpdateTicketStatusCommand, error) {
	if err := errors.Join(requester.Validate(), ticketID.Validate(), status.Validate()); err != nil {
		return UpdateTicketStatusCommand{}, err
	}
	return UpdateTicketStatusCommand{
		requester: requester,
		ticketID:  ticketID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through NewUpdateTicketStatusCommand.
// Returns ErrUpdateTicketStatusCommandIsNotConstructed if validation fails.
func (c UpdateTicketStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTicketStatusCommandIsNotConstructed)
}

// Requester returns who issued the command.
func (c UpdateTicketStatusCommand) Requester() kernel.Requester {
	return c.requester
}

// TicketID returns the ticket the command targets.
func (c UpdateTicketStatusCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// Status returns the requested status.
func (c UpdateTicketStatusCommand) Status() ticket.Status {
	return c.status
}
