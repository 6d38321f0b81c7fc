package memory

import (
	"context"
	"slices"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"
	"laundry/internal/pkg/errs"
)

// TicketRepository implements ports.TicketRepository.
type TicketRepository struct {
	view
}

// Add stores a copy of the ticket.
func (r *TicketRepository) Add(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	c, err := cloneTicket(aggregate)
	if err != nil {
		return err
	}
	return r.write(ctx, func() error {
		if _, exists := r.ticket(c.ID()); exists {
			return errs.NewConflictError("ticketId")
		}
		r.putTicket(c)
		return nil
	})
}

// Update replaces a stored ticket.
func (r *TicketRepository) Update(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	c, err := cloneTicket(aggregate)
	if err != nil {
		return err
	}
	return r.write(ctx, func() error {
		if _, exists := r.ticket(c.ID()); !exists {
			return errs.NewObjectNotFoundError("ticketId", c.ID().String())
		}
		r.putTicket(c)
		return nil
	})
}

// Get returns a copy of the ticket, or ObjectNotFoundError.
func (r *TicketRepository) Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error) {
	var out *ticket.Ticket
	err := r.read(ctx, func() error {
		t, ok := r.ticket(id)
		if !ok {
			return errs.NewObjectNotFoundError("ticketId", id.String())
		}
		var err error
		out, err = cloneTicket(t)
		return err
	})
	return out, err
}

// ListByUser returns the tickets filed by a user, newest first.
func (r *TicketRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]*ticket.Ticket, error) {
	var out []*ticket.Ticket
	err := r.read(ctx, func() error {
		out = make([]*ticket.Ticket, 0)
		for _, t := range r.allTickets() {
			if !t.UserID().IsEqual(userID) {
				continue
			}
			c, err := cloneTicket(t)
			if err != nil {
				return err
			}
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b *ticket.Ticket) int {
		if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
			return c
		}
		return compareIDs(b.ID(), a.ID())
	})
	return out, nil
}
