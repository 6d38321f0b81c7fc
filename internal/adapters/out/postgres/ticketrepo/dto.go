package ticketrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"

	"github.com/google/uuid"
)

// TicketDTO is the row of the support_tickets table.
type TicketDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_support_tickets_user_created,priority:1"`
	Type         string    `gorm:"type:varchar(16);not null"`
	Subject      string    `gorm:"type:varchar(255);not null"`
	Message      string    `gorm:"type:text;not null"`
	ContactName  string    `gorm:"type:varchar(255);not null"`
	ContactEmail string    `gorm:"type:varchar(255);not null"`
	ContactPhone string    `gorm:"type:varchar(64);not null;default:''"`
	Status       string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"not null;index:idx_support_tickets_user_created,priority:2"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName maps TicketDTO to the support_tickets table.
func (TicketDTO) TableName() string {
	return "support_tickets"
}

func fromDomain(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:           t.ID().Bytes(),
		UserID:       t.UserID().Bytes(),
		Type:         t.Type().String(),
		Subject:      t.Subject(),
		Message:      t.Message(),
		ContactName:  t.Contact().Name,
		ContactEmail: t.Contact().Email,
		ContactPhone: t.Contact().Phone,
		Status:       t.Status().String(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func toDomain(dto TicketDTO) (*ticket.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	kind, err := ticket.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := ticket.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return ticket.RestoreTicket(id, userID, kind, dto.Subject, dto.Message, ticket.Contact{
		Name:  dto.ContactName,
		Email: dto.ContactEmail,
		Phone: dto.ContactPhone,
	}, status, dto.CreatedAt, dto.UpdatedAt)
}
