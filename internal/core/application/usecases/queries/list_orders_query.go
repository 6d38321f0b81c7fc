package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
	ErrListShopOrdersQueryIsNotConstructed = errors.New(
		"ListShopOrdersQuery must be created via NewListShopOrdersQuery constructor",
	)
)

// ListCustomerOrdersQuery lists the requester's own orders.
//
// Example:
//
//	filter, _ := order.NewFilter("active", nil)
//	query, err := NewListCustomerOrdersQuery(requester, filter)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListCustomerOrdersQuery struct {
	requester kernel.Requester
	filter    order.Filter

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery creates a query for the orders the requester placed.
//
// Parameters:
//   - requester: an authenticated customer
//   - filter: optional status filter, the zero Filter matches every order
//
// Returns:
//   - ListCustomerOrdersQuery: the query
//   - error: validation error of requester
//
// Example:
//
//	query, err := queries.NewListCustomerOrdersQuery(customer, order.Filter{})
func NewListCustomerOrdersQuery(requester kernel.Requester, filter order.Filter) (ListCustomerOrdersQuery, error) {
	if err := requester.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}
	return ListCustomerOrdersQuery{requester: requester, filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through NewListCustomerOrdersQuery.
// Returns ErrListCustomerOrdersQueryIsNotConstructed if validation fails.
func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// Requester returns who issued the query.
func (q ListCustomerOrdersQuery) Requester() kernel.Requester {
	return q.requester
}

// Filter returns the status filter to apply.
func (q ListCustomerOrdersQuery) Filter() order.Filter {
	return q.filter
}

// ListShopOrdersQuery lists the orders of a shop the requester owns.
type ListShopOrdersQuery struct {
	requester kernel.Requester
	shopID    kernel.UUID
	filter    order.Filter

	guard guard.ConstructorGuard
}

// NewListShopOrdersQuery creates a query for the orders of one shop. Ownership
// is checked by the handler.
func NewListShopOrdersQuery(
	requester kernel.Requester, shopID kernel.UUID, filter order.Filter,
) (ListShopOrdersQuery, error) {
	if err := errors.Join(requester.Validate(), shopID.Validate()); err != nil {
		return ListShopOrdersQuery{}, err
	}
	return ListShopOrdersQuery{
		requester: requester,
		shopID:    shopID,
		filter:    filter,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through NewListShopOrdersQuery.
// Returns ErrListShopOrdersQueryIsNotConstructed if validation fails.
func (q ListShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListShopOrdersQueryIsNotConstructed)
}

// Requester returns who issued the query.
func (q ListShopOrdersQuery) Requester() kernel.Requester {
	return q.requester
}

// ShopID returns the shop the query targets.
func (q ListShopOrdersQuery) ShopID() kernel.UUID {
	return q.shopID
}

// Filter returns the status filter to apply.
func (q ListShopOrdersQuery) Filter() order.Filter {
	return q.filter
}

// ListShopOrdersQueryResponse carries the filtered orders and the group counts
// of the shop's whole order set.
type ListShopOrdersQueryResponse struct {
	Orders []*order.Order
	Counts order.GroupCounts
}
