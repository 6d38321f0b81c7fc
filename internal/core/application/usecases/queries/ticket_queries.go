package queries

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrListTicketsQueryIsNotConstructed = errors.New(
		"ListTicketsQuery must be created via NewListTicketsQuery constructor",
	)
	ErrGetTicketQueryIsNotConstructed = errors.New(
		"GetTicketQuery must be created via NewGetTicketQuery constructor",
	)
)

// ListTicketsQuery lists the tickets filed by the requester.
type ListTicketsQuery struct {
	requester kernel.Requester

	guard guard.ConstructorGuard
}

// NewListTicketsQuery creates the query.
func NewListTicketsQuery(requester kernel.Requester) (ListTicketsQuery, error) {
	if err := requester.Validate(); err != nil {
		return ListTicketsQuery{}, err
	}
	return ListTicketsQuery{requester: requester, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through NewListTicketsQuery.
// Returns ErrListTicketsQueryIsNotConstructed if validation fails.
func (q ListTicketsQuery) Validate() error {
	return q.guard.Validate(ErrListTicketsQueryIsNotConstructed)
}

// GetTicketQuery reads one ticket filed by the requester.
type GetTicketQuery struct {
	requester kernel.Requester
	ticketID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTicketQuery creates the query.
func NewGetTicketQuery(requester kernel.Requester, ticketID kernel.UUID) (GetTicketQuery, error) {
	if err := errors.Join(requester.Validate(), ticketID.Validate()); err != nil {
		return GetTicketQuery{}, err
	}
	return GetTicketQuery{requester: requester, ticketID: ticketID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through NewGetTicketQuery.
// Returns ErrGetTicketQueryIsNotConstructed if validation fails.
func (q GetTicketQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketQueryIsNotConstructed)
}

// TicketQueryHandler serves a user's own support tickets.
type TicketQueryHandler struct {
	tickets ports.TicketRepository
}

// NewTicketQueryHandler creates the handler.
func NewTicketQueryHandler(tickets ports.TicketRepository) TicketQueryHandler {
	return TicketQueryHandler{tickets: tickets}
}

// HandleList returns the requester's tickets, newest first.
func (h TicketQueryHandler) HandleList(ctx context.Context, query ListTicketsQuery) ([]*ticket.Ticket, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	list, err := h.tickets.ListByUser(ctx, query.requester.UserID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = make([]*ticket.Ticket, 0)
	}
	return list, nil
}

// HandleGet returns one ticket. Tickets of other users are reported as not found.
func (h TicketQueryHandler) HandleGet(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	t, err := h.tickets.Get(ctx, query.ticketID)
	if err != nil {
		return nil, err
	}
	if !t.IsOwnedBy(query.requester.UserID) {
		return nil, errs.NewObjectNotFoundError("ticketId", query.ticketID.String())
	}
	return t, nil
}
