package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"
)

// TicketRepository defines the persistence contract for support tickets.
type TicketRepository interface {
	Add(ctx context.Context, aggregate *ticket.Ticket) error

	// Update writes the ticket status and updatedAt.
	Update(ctx context.Context, aggregate *ticket.Ticket) error

	// Get retrieves a ticket by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error)

	// ListByUser returns the user's tickets, newest first.
	ListByUser(ctx context.Context, userID kernel.UUID) ([]*ticket.Ticket, error)
}
