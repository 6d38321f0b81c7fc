package order

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Item is one line of an order: a service type of the shop's catalog and a piece count.
type Item struct {
	serviceType string
	count       int
}

// NewItem creates an order line.
//
// Parameters:
//   - serviceType: non-blank, without leading or trailing whitespace; it is
//     stored exactly as given
//   - count: number of pieces, greater than 0
//
// Returns:
//   - Item: the order line
//   - error: ValueIsRequiredError for a blank service type, ValueIsInvalidError
//     for padding or a non-positive count
//
// Example:
//
//	item, err := order.NewItem("wash_fold", 3)
func NewItem(serviceType string, count int) (Item, error) {
	trimmed := strings.TrimSpace(serviceType)
	if trimmed == "" {
		return Item{}, errs.NewValueIsRequiredError("serviceType")
	}
	if trimmed != serviceType {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("serviceType",
			errors.New("leading or trailing whitespace"))
	}
	if count <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%d is not greater than 0", count))
	}
	return Item{serviceType: serviceType, count: count}, nil
}

// ServiceType returns the catalog service type of the line.
func (i Item) ServiceType() string {
	return i.serviceType
}

// Count returns the number of pieces.
func (i Item) Count() int {
	return i.count
}
