package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created through NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is one requested order line.
type ItemInput struct {
	ServiceType string
	Count       int
}

// CreateOrderCommand represents a customer's request to place an order at a shop.
//
// Example:
//
//	total, _ := kernel.MoneyFromFloat(42.5)
//	cmd, err := NewCreateOrderCommand(requester, shopID,
//	    []ItemInput{{ServiceType: "wash_fold", Count: 3}}, pickup, nil, "", total)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	requester kernel.Requester
	shopID    kernel.UUID
	details   order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the shape of the request. Role and shop
// existence are checked by the handler.
func NewCreateOrderCommand(
	requester kernel.Requester,
	shopID kernel.UUID,
	items []ItemInput,
	pickupDate time.Time,
	pickupAddress *kernel.Address,
	specialInstructions string,
	totalAmount kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequester(requester),
		cmd.setShopID(shopID),
		cmd.setItems(items),
		cmd.setPickup(pickupDate, pickupAddress),
		cmd.setTotalAmount(totalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.details.SpecialInstructions = specialInstructions

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Requester returns who issued the command.
func (c CreateOrderCommand) Requester() kernel.Requester {
	return c.requester
}

// ShopID returns the shop the command targets.
func (c CreateOrderCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Details returns the pickup and delivery data of the order.
func (c CreateOrderCommand) Details() order.Details {
	d := c.details
	d.Items = append([]order.Item(nil), c.details.Items...)
	return d
}

func (c *CreateOrderCommand) setRequester(r kernel.Requester) error {
	if err := r.Validate(); err != nil {
		return err
	}
	c.requester = r
	return nil
}

func (c *CreateOrderCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	c.shopID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	lines := make([]order.Item, 0, len(items))
	var errList []error
	for _, in := range items {
		item, err := order.NewItem(in.ServiceType, in.Count)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		lines = append(lines, item)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.details.Items = lines
	return nil
}

func (c *CreateOrderCommand) setPickup(date time.Time, address *kernel.Address) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	if address != nil {
		if err := address.Validate("pickupAddress"); err != nil {
			return err
		}
	}
	c.details.PickupDate = date
	c.details.PickupAddress = address
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("totalAmount", err)
	}
	c.details.TotalAmount = amount
	return nil
}
