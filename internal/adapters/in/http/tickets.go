package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"

	"github.com/labstack/echo/v4"
)

// CreateTicket handles POST /api/v1/tickets.
func (s *Server) CreateTicket(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	var body NewTicket
	if err := c.Bind(&body); err != nil {
		return err
	}
	kind, err := ticket.TypeFromString(body.Type)
	if err != nil {
		return err
	}
	contact := ticket.Contact{Name: body.Name, Email: body.Email, Phone: body.Phone}
	cmd, err := commands.NewCreateTicketCommand(requester, kind, body.Subject, body.Message, contact)
	if err != nil {
		return err
	}

	id, err := s.h.CreateTicket.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

// ListTickets handles GET /api/v1/tickets.
func (s *Server) ListTickets(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListTicketsQuery(requester)
	if err != nil {
		return err
	}

	tickets, err := s.h.Tickets.HandleList(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTickets(tickets))
}

// GetTicket handles GET /api/v1/tickets/:ticketId.
func (s *Server) GetTicket(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	ticketID, err := kernel.ParseID("ticketId", c.Param("ticketId"))
	if err != nil {
		return err
	}
	query, err := queries.NewGetTicketQuery(requester, ticketID)
	if err != nil {
		return err
	}

	t, err := s.h.Tickets.HandleGet(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTicket(t))
}

// UpdateTicketStatus handles PATCH /api/v1/tickets/:ticketId/status.
func (s *Server) UpdateTicketStatus(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	ticketID, err := kernel.ParseID("ticketId", c.Param("ticketId"))
	if err != nil {
		return err
	}
	var body StatusChange
	if err := c.Bind(&body); err != nil {
		return err
	}
	status, err := ticket.StatusFromString(body.Status)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateTicketStatusCommand(requester, ticketID, status)
	if err != nil {
		return err
	}

	t, err := s.h.UpdateTicketStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTicket(t))
}
