package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery was not
// created through NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order as seen by the requester.
type GetOrderQuery struct {
	requester kernel.Requester
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to read one order.
func NewGetOrderQuery(requester kernel.Requester, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(requester.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{requester: requester, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through NewGetOrderQuery.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Requester returns who issued the query.
func (q GetOrderQuery) Requester() kernel.Requester {
	return q.requester
}

// OrderID returns the order the query targets.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
