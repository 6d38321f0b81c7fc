package queries

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/guard"
)

// ErrListShopServicesQueryIsNotConstructed is returned when a
// ListShopServicesQuery was not created through its constructor.
var ErrListShopServicesQueryIsNotConstructed = errors.New(
	"ListShopServicesQuery must be created via NewListShopServicesQuery constructor",
)

// ListShopServicesQuery reads a shop's catalog. Open to any authenticated requester.
type ListShopServicesQuery struct {
	requester kernel.Requester
	shopID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewListShopServicesQuery creates a query for the catalog of a shop.
func NewListShopServicesQuery(requester kernel.Requester, shopID kernel.UUID) (ListShopServicesQuery, error) {
	if err := errors.Join(requester.Validate(), shopID.Validate()); err != nil {
		return ListShopServicesQuery{}, err
	}
	return ListShopServicesQuery{requester: requester, shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through NewListShopServicesQuery.
// Returns ErrListShopServicesQueryIsNotConstructed if validation fails.
func (q ListShopServicesQuery) Validate() error {
	return q.guard.Validate(ErrListShopServicesQueryIsNotConstructed)
}

// ListShopServicesQueryHandler reads shop catalogs.
type ListShopServicesQueryHandler struct {
	shops ports.ShopRepository
}

// NewListShopServicesQueryHandler creates the handler.
func NewListShopServicesQueryHandler(shops ports.ShopRepository) ListShopServicesQueryHandler {
	return ListShopServicesQueryHandler{shops: shops}
}

// Handle returns the catalog in insertion order.
func (h ListShopServicesQueryHandler) Handle(
	ctx context.Context, query ListShopServicesQuery,
) ([]shop.ServiceItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	s, err := h.shops.Get(ctx, query.shopID)
	if err != nil {
		return nil, err
	}
	return s.Services(), nil
}
