package queries

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// GetShopQueryHandler reads a single shop.
type GetShopQueryHandler struct {
	shops ports.ShopRepository
}

// NewGetShopQueryHandler creates the handler.
func NewGetShopQueryHandler(shops ports.ShopRepository) GetShopQueryHandler {
	return GetShopQueryHandler{shops: shops}
}

// Handle returns the shop whatever its status.
func (h GetShopQueryHandler) Handle(ctx context.Context, query GetShopQuery) (*shop.Shop, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.shops.Get(ctx, query.ShopID())
}

// ListActiveShopsQueryHandler lists the shops customers can order from.
type ListActiveShopsQueryHandler struct {
	shops ports.ShopRepository
}

// NewListActiveShopsQueryHandler creates the handler.
func NewListActiveShopsQueryHandler(shops ports.ShopRepository) ListActiveShopsQueryHandler {
	return ListActiveShopsQueryHandler{shops: shops}
}

// Handle returns every active shop ordered by name.
func (h ListActiveShopsQueryHandler) Handle(ctx context.Context, query ListActiveShopsQuery) ([]*shop.Shop, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	list, err := h.shops.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = make([]*shop.Shop, 0)
	}
	return list, nil
}

// FindNearbyShopsQueryHandler pre-selects candidates with the geo index when one
// is configured, otherwise with the repository's proximity query. Candidates are
// then ranked by NearbyRanker, which recomputes every distance.
type FindNearbyShopsQueryHandler struct {
	shops  ports.ShopRepository
	geo    ports.ShopGeoIndex
	ranker services.NearbyRanker
	logger *slog.Logger
}

// NewFindNearbyShopsQueryHandler builds the handler. geo may be nil.
func NewFindNearbyShopsQueryHandler(
	shops ports.ShopRepository, geo ports.ShopGeoIndex, logger *slog.Logger,
) FindNearbyShopsQueryHandler {
	return FindNearbyShopsQueryHandler{
		shops:  shops,
		geo:    geo,
		ranker: services.NewNearbyRanker(),
		logger: loggerOrDefault(logger, "find_nearby_shops"),
	}
}

// Handle returns the shops within the radius of the query, nearest first.
func (h FindNearbyShopsQueryHandler) Handle(
	ctx context.Context, query FindNearbyShopsQuery,
) ([]services.ShopDistance, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.candidates(ctx, query.Origin(), query.RadiusKm())
	if err != nil {
		return nil, err
	}

	return h.ranker.Rank(query.Origin(), query.RadiusKm(), candidates)
}

// candidates falls back to the repository when the geo index fails, so a
// degraded index costs latency rather than availability.
func (h FindNearbyShopsQueryHandler) candidates(
	ctx context.Context, origin kernel.GeoPoint, radiusKm float64,
) ([]*shop.Shop, error) {
	if h.geo != nil {
		ids, err := h.geo.Search(ctx, origin, radiusKm)
		if err == nil {
			if len(ids) == 0 {
				return nil, nil
			}
			return h.shops.GetMany(ctx, ids)
		}
		h.logger.WarnContext(ctx, "geo index search failed, using store proximity query", "error", err)
	}
	return h.shops.FindActiveWithin(ctx, origin, radiusKm)
}
