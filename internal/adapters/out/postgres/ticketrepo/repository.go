// Package ticketrepo persists support tickets with gorm.
package ticketrepo

import (
	"context"

	"laundry/internal/adapters/out/postgres/dberr"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/ticket"

	"gorm.io/gorm"
)

// GormTicketRepository implements ports.TicketRepository on postgres.
type GormTicketRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTicketRepository creates a repository. tracker receives every
// aggregate written through it.
func NewGormTicketRepository(db *gorm.DB, tracker aggregateTracker) *GormTicketRepository {
	return &GormTicketRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new ticket.
func (r *GormTicketRepository) Add(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "ticketId")
	}

	r.track(aggregate)
	return nil
}

// Update writes status and updated_at only; the rest of a ticket is immutable.
func (r *GormTicketRepository) Update(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TicketDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return dberr.Translate(result.Error, "ticketId")
	}
	if result.RowsAffected == 0 {
		return dberr.NotFound(gorm.ErrRecordNotFound, "ticketId", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

// Get loads a ticket, or returns ObjectNotFoundError.
func (r *GormTicketRepository) Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound(err, "ticketId", id.String())
	}
	return toDomain(dto)
}

// ListByUser returns the tickets filed by a user, newest first.
func (r *GormTicketRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]*ticket.Ticket, error) {
	var dtos []TicketDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Translate(err, "userId")
	}

	tickets := make([]*ticket.Ticket, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *GormTicketRepository) track(aggregate *ticket.Ticket) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
