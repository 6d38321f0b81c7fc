package shoprepo

import (
	"context"
	"fmt"

	"laundry/internal/adapters/out/postgres/dberr"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// proximitySlackKm widens the SQL radius a little; the caller recomputes
// distances and applies the exact radius.
const proximitySlackKm = 1e-6

// haversineSQL is the great-circle distance in km from (?, ?) = (lon, lat) to the shop.
const haversineSQL = `2 * 6371 * ASIN(LEAST(1, SQRT(
	POWER(SIN(RADIANS(location_lat - ?) / 2), 2) +
	COS(RADIANS(?)) * COS(RADIANS(location_lat)) * POWER(SIN(RADIANS(location_lon - ?) / 2), 2)
)))`

const reconcileSQL = `
UPDATE shops AS s
SET total_orders = c.actual
FROM (
	SELECT sh.id, COUNT(o.id) AS actual
	FROM shops AS sh
	LEFT JOIN orders AS o ON o.shop_id = sh.id
	GROUP BY sh.id
) AS c
WHERE s.id = c.id AND s.total_orders <> c.actual`

// GormShopRepository implements ports.ShopRepository using GORM.
type GormShopRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShopRepository creates a new GORM shop repository. tracker may be nil.
func NewGormShopRepository(db *gorm.DB, tracker aggregateTracker) *GormShopRepository {
	return &GormShopRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the shop row and its catalog.
func (r *GormShopRepository) Add(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err, "name")
	}

	r.track(aggregate)
	return nil
}

// Update rewrites the owner-editable columns and replaces the catalog rows.
func (r *GormShopRepository) Update(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ShopDTO{}).
			Where("id = ?", dto.ID).
			Select("name", "description", "address", "location_lon", "location_lat", "service_radius_km",
				"business_hours", "contact_phone", "contact_email", "status", "updated_at").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("shop_id = ?", dto.ID).Delete(&ServiceDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Services) > 0 {
			return tx.Create(&dto.Services).Error
		}
		return nil
	})
	if err != nil {
		return dberr.NotFound(err, "shopId", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

// Get loads a shop with its catalog.
func (r *GormShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate locks the shop row until the surrounding transaction ends.
func (r *GormShopRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormShopRepository) get(_ context.Context, query *gorm.DB, id kernel.UUID) (*shop.Shop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShopDTO
	if err := withServices(query).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound(err, "shopId", id.String())
	}
	return toDomain(dto)
}

// GetMany loads the shops among ids with their catalogs. Missing ids are skipped.
func (r *GormShopRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*shop.Shop, error) {
	if len(ids) == 0 {
		return []*shop.Shop{}, nil
	}
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ShopDTO
	if err := withServices(r.db.WithContext(ctx)).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, dberr.Translate(err, "shopId")
	}
	return toDomainList(dtos)
}

// ListActive returns active shops ordered by name.
func (r *GormShopRepository) ListActive(ctx context.Context) ([]*shop.Shop, error) {
	var dtos []ShopDTO
	err := withServices(r.db.WithContext(ctx)).
		Where("status = ?", shop.Active.String()).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Translate(err, "shopId")
	}
	return toDomainList(dtos)
}

// FindActiveWithin filters active shops with the haversine formula in SQL.
func (r *GormShopRepository) FindActiveWithin(
	ctx context.Context, point kernel.GeoPoint, radiusKm float64,
) ([]*shop.Shop, error) {
	var dtos []ShopDTO
	err := withServices(r.db.WithContext(ctx)).
		Where("status = ?", shop.Active.String()).
		Where(haversineSQL+" <= ?", point.Lat(), point.Lat(), point.Lon(), radiusKm+proximitySlackKm).
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Translate(err, "shopId")
	}
	return toDomainList(dtos)
}

// IncrementTotalOrders adds one to the counter in a single UPDATE.
func (r *GormShopRepository) IncrementTotalOrders(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&ShopDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("total_orders", gorm.Expr("total_orders + 1"))
	if result.Error != nil {
		return dberr.Translate(result.Error, "shopId")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shopId", id.String())
	}
	return nil
}

// ReconcileTotalOrders sets every drifted counter to the actual order count.
func (r *GormShopRepository) ReconcileTotalOrders(ctx context.Context) (int, error) {
	result := r.db.WithContext(ctx).Exec(reconcileSQL)
	if result.Error != nil {
		return 0, dberr.Translate(result.Error, "totalOrders")
	}
	return int(result.RowsAffected), nil
}

func (r *GormShopRepository) track(aggregate *shop.Shop) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func withServices(query *gorm.DB) *gorm.DB {
	return query.Preload("Services", func(db *gorm.DB) *gorm.DB {
		return db.Order("position, service_type")
	})
}

func toDomainList(dtos []ShopDTO) ([]*shop.Shop, error) {
	shops := make([]*shop.Shop, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("shop %s: %w", dto.ID, err)
		}
		shops = append(shops, s)
	}
	return shops, nil
}
