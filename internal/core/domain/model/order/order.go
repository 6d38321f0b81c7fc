package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details are the customer-supplied parts of a new order.
type Details struct {
	Items               []Item
	PickupDate          time.Time
	PickupAddress       *kernel.Address
	SpecialInstructions string
	TotalAmount         kernel.Money
}

// Order is the aggregate root of the order ledger. It records what a customer
// asked a shop to clean and where the order is in its lifecycle.
//
// Order follows these invariants:
//   - Must reference a customer and a shop
//   - Has at least one item, each with a positive count
//   - Total amount is non-negative and never changes after creation
//   - Status only moves along the edges of the Status transition table
//   - updatedAt is refreshed on every mutation
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	shopID     kernel.UUID

	items               []Item
	pickupDate          time.Time
	pickupAddress       *kernel.Address
	specialInstructions string
	totalAmount         kernel.Money

	status    Status
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a Pending order. createdAt and updatedAt are both set to now (UTC).
//
// Example:
//
//	total, _ := kernel.MoneyFromFloat(25)
//	item, _ := order.NewItem("wash_fold", 3)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, shopID, order.Details{
//	    Items:       []order.Item{item},
//	    PickupDate:  pickup,
//	    TotalAmount: total,
//	}, time.Now())
func NewOrder(id, customerID, shopID kernel.UUID, details Details, now time.Time) (*Order, error) {
	now = now.UTC()
	order := &Order{
		status:              Pending,
		specialInstructions: details.SpecialInstructions,
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setShopID(shopID),
		order.setItems(details.Items),
		order.setPickupDate(details.PickupDate),
		order.setPickupAddress(details.PickupAddress),
		order.setTotalAmount(details.TotalAmount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order loaded from storage. Identifiers and status are
// validated; business rules that only apply on creation are not re-checked.
func RestoreOrder(
	id, customerID, shopID kernel.UUID,
	details Details,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), shopID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:                  id,
		customerID:          customerID,
		shopID:              shopID,
		items:               append([]Item(nil), details.Items...),
		pickupDate:          details.PickupDate.UTC(),
		pickupAddress:       details.PickupAddress,
		specialInstructions: details.SpecialInstructions,
		totalAmount:         details.TotalAmount,
		status:              status,
		createdAt:           createdAt.UTC(),
		updatedAt:           updatedAt.UTC(),
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ShopID returns the shop the order was placed with.
func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// PickupDate returns the requested pickup time in UTC.
func (o *Order) PickupDate() time.Time {
	return o.pickupDate
}

// PickupAddress returns where to collect the laundry, nil when not given.
func (o *Order) PickupAddress() *kernel.Address {
	return o.pickupAddress
}

// SpecialInstructions returns the customer's free-text notes.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// TotalAmount returns the amount agreed on creation. It never changes.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last status change in UTC.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order to next when the edge exists in the transition table.
//
// Returns:
//   - nil on success; status and updatedAt are changed
//   - InvalidTransitionError when the edge does not exist, the order is unchanged
//   - ValueIsInvalidError when next is not a valid status
func (o *Order) TransitionTo(next Status, now time.Time) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}

	o.status = next
	o.updatedAt = now.UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	o.shopID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item.serviceType == "" || item.count <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d was not created via NewItem", i))
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setPickupDate(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	o.pickupDate = pickupDate.UTC()
	return nil
}

func (o *Order) setPickupAddress(address *kernel.Address) error {
	if address == nil {
		return nil
	}
	if err := address.Validate("pickupAddress"); err != nil {
		return err
	}
	copied := *address
	o.pickupAddress = &copied
	return nil
}

func (o *Order) setTotalAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("totalAmount", err)
	}
	o.totalAmount = amount
	return nil
}
