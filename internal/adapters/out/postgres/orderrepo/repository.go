package orderrepo

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/adapters/out/postgres/dberr"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository. tracker may be nil
// for repositories used outside a unit of work.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "orderId")
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound(err, "orderId", id.String())
	}

	return toDomain(dto)
}

// ListByCustomer returns the orders of a customer, newest first.
func (r *GormOrderRepository) ListByCustomer(
	ctx context.Context, customerID kernel.UUID, filter order.Filter,
) ([]*order.Order, error) {
	return r.list(ctx, "customer_id = ?", customerID, filter)
}

// ListByShop returns the orders of a shop, newest first.
func (r *GormOrderRepository) ListByShop(
	ctx context.Context, shopID kernel.UUID, filter order.Filter,
) ([]*order.Order, error) {
	return r.list(ctx, "shop_id = ?", shopID, filter)
}

func (r *GormOrderRepository) list(
	ctx context.Context, ownerClause string, ownerID kernel.UUID, filter order.Filter,
) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Where(ownerClause, ownerID.Bytes())
	if !filter.IsAll() {
		query = query.Where("status IN ?", statusNames(filter.Statuses()))
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, dberr.Translate(err, "orderId")
	}
	return toDomainList(dtos)
}

// ListByShopCreatedBetween returns the shop's orders with createdAt in [from, to], oldest first.
func (r *GormOrderRepository) ListByShopCreatedBetween(
	ctx context.Context, shopID kernel.UUID, from, to time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND created_at BETWEEN ? AND ?", shopID.Bytes(), from.UTC(), to.UTC()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Translate(err, "orderId")
	}
	return toDomainList(dtos)
}

// UpdateStatus sets the status only while it still equals from.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, from, next order.Status, updatedAt time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), from.String()).
		Updates(map[string]any{
			"status":     next.String(),
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return dberr.Translate(result.Error, "status")
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("status",
			fmt.Errorf("order %s is no longer %s", id.String(), from.String()))
	}
	return nil
}

type statusTotalRow struct {
	Status string
	Count  int
	Amount decimal.Decimal
}

// StatusTotals groups the shop's orders by status in the database.
func (r *GormOrderRepository) StatusTotals(ctx context.Context, shopID kernel.UUID) ([]services.StatusTotal, error) {
	var rows []statusTotalRow
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS amount").
		Where("shop_id = ?", shopID.Bytes()).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, dberr.Translate(err, "shopId")
	}

	totals := make([]services.StatusTotal, 0, len(rows))
	for _, row := range rows {
		status, statusErr := order.StatusFromString(row.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		amount, moneyErr := kernel.NewMoneyTotal(row.Amount)
		if moneyErr != nil {
			return nil, moneyErr
		}
		totals = append(totals, services.StatusTotal{Status: status, Count: row.Count, Amount: amount})
	}
	return totals, nil
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
