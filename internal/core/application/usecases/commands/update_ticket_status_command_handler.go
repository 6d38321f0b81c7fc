package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"
	"laundry/internal/pkg/errs"
)

// UpdateTicketStatusCommandHandler lets the author of a ticket move its status.
// Tickets of other users are reported as not found.
type UpdateTicketStatusCommandHandler struct {
	uowFactory TicketUoWFactory
	clock      kernel.Clock
}

// NewUpdateTicketStatusCommandHandler creates the handler.
func NewUpdateTicketStatusCommandHandler(uowFactory TicketUoWFactory, clock kernel.Clock) UpdateTicketStatusCommandHandler {
	return UpdateTicketStatusCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle loads the ticket, applies the status and saves it. A ticket filed by
// another user is reported as not found.
func (h *UpdateTicketStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateTicketStatusCommand,
) (*ticket.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TicketRepository()
	t, err := repo.Get(ctx, cmd.TicketID())
	if err != nil {
		return nil, err
	}
	if !t.IsOwnedBy(cmd.Requester().UserID) {
		return nil, errs.NewObjectNotFoundError("ticketId", cmd.TicketID().String())
	}

	if err = t.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
