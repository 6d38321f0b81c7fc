package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"
)

// CreateTicketCommandHandler persists new support tickets.
type CreateTicketCommandHandler struct {
	uowFactory TicketUoWFactory
	clock      kernel.Clock
}

// NewCreateTicketCommandHandler creates the handler.
func NewCreateTicketCommandHandler(uowFactory TicketUoWFactory, clock kernel.Clock) CreateTicketCommandHandler {
	return CreateTicketCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle returns the id of the new ticket. Any role may file a ticket.
func (h *CreateTicketCommandHandler) Handle(ctx context.Context, cmd CreateTicketCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	t, err := ticket.NewTicket(
		kernel.NewUUID(), cmd.Requester().UserID, cmd.Type(),
		cmd.Subject(), cmd.Message(), cmd.Contact(), h.clock.Now(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TicketRepository().Add(ctx, t); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return t.ID(), nil
}
