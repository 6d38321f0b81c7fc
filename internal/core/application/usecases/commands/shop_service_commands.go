package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/guard"
)

var (
	ErrAddShopServiceCommandIsNotConstructed = errors.New(
		"AddShopServiceCommand must be created via NewAddShopServiceCommand constructor",
	)
	ErrUpdateShopServiceCommandIsNotConstructed = errors.New(
		"UpdateShopServiceCommand must be created via NewUpdateShopServiceCommand constructor",
	)
	ErrRemoveShopServiceCommandIsNotConstructed = errors.New(
		"RemoveShopServiceCommand must be created via NewRemoveShopServiceCommand constructor",
	)
)

// AddShopServiceCommand appends an entry to a shop's catalog.
type AddShopServiceCommand struct { //nolint:recvcheck //using for validation
	requester kernel.Requester
	shopID    kernel.UUID
	draft     shop.ServiceDraft

	guard guard.ConstructorGuard
}

// NewAddShopServiceCommand creates a validated command. The draft itself is
// checked by the Shop aggregate, which also detects duplicate service types.
//
// Parameters:
//   - requester: must be the owner of the shop, checked by the handler
//   - shopID: shop whose catalog changes
//   - draft: service type, price and description of the new entry
//
// Returns:
//   - AddShopServiceCommand: ready for ShopServiceCommandHandler.Add
//   - error: ErrInvalidInput for a zero requester or shop id
//
// Example:
//
//	price, _ := kernel.MoneyFromFloat(4.5)
//	cmd, err := commands.NewAddShopServiceCommand(owner, shopID,
//	    shop.ServiceDraft{ServiceType: "ironing", Price: price})
func NewAddShopServiceCommand(
	requester kernel.Requester, shopID kernel.UUID, draft shop.ServiceDraft,
) (AddShopServiceCommand, error) {
	if err := errors.Join(requester.Validate(), shopID.Validate()); err != nil {
		return AddShopServiceCommand{}, err
	}
	return AddShopServiceCommand{
		requester: requester,
		shopID:    shopID,
		draft:     draft,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through NewAddShopServiceCommand.
func (c AddShopServiceCommand) Validate() error {
	return c.guard.Validate(ErrAddShopServiceCommandIsNotConstructed)
}

// Requester returns who asked for the change.
func (c AddShopServiceCommand) Requester() kernel.Requester {
	return c.requester
}

// ShopID returns the shop whose catalog changes.
func (c AddShopServiceCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Draft returns the entry to add.
func (c AddShopServiceCommand) Draft() shop.ServiceDraft {
	return c.draft
}

// UpdateShopServiceCommand changes one catalog entry.
type UpdateShopServiceCommand struct { //nolint:recvcheck //using for validation
	requester kernel.Requester
	shopID    kernel.UUID
	serviceID kernel.UUID
	update    shop.ServiceUpdate

	guard guard.ConstructorGuard
}

// NewUpdateShopServiceCommand creates a validated command for one catalog entry.
//
// Parameters:
//   - requester: must be the owner of the shop
//   - shopID, serviceID: the entry to change
//   - update: nil fields are left untouched
//
// Returns:
//   - UpdateShopServiceCommand: ready for ShopServiceCommandHandler.Update
//   - error: ErrInvalidInput for a zero requester or identifier
func NewUpdateShopServiceCommand(
	requester kernel.Requester, shopID, serviceID kernel.UUID, update shop.ServiceUpdate,
) (UpdateShopServiceCommand, error) {
	if err := errors.Join(requester.Validate(), shopID.Validate(), serviceID.Validate()); err != nil {
		return UpdateShopServiceCommand{}, err
	}
	return UpdateShopServiceCommand{
		requester: requester,
		shopID:    shopID,
		serviceID: serviceID,
		update:    update,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through NewUpdateShopServiceCommand.
func (c UpdateShopServiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShopServiceCommandIsNotConstructed)
}

// Requester returns who asked for the change.
func (c UpdateShopServiceCommand) Requester() kernel.Requester {
	return c.requester
}

// ShopID returns the shop whose catalog changes.
func (c UpdateShopServiceCommand) ShopID() kernel.UUID {
	return c.shopID
}

// ServiceID returns the catalog entry to change.
func (c UpdateShopServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Update returns the fields to change.
func (c UpdateShopServiceCommand) Update() shop.ServiceUpdate {
	return c.update
}

// RemoveShopServiceCommand deletes one catalog entry.
type RemoveShopServiceCommand struct { //nolint:recvcheck //using for validation
	requester kernel.Requester
	shopID    kernel.UUID
	serviceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveShopServiceCommand creates a validated command. Removing the last
// entry of a catalog is rejected by the handler.
//
// Returns:
//   - RemoveShopServiceCommand: ready for ShopServiceCommandHandler.Remove
//   - error: ErrInvalidInput for a zero requester or identifier
func NewRemoveShopServiceCommand(
	requester kernel.Requester, shopID, serviceID kernel.UUID,
) (RemoveShopServiceCommand, error) {
	if err := errors.Join(requester.Validate(), shopID.Validate(), serviceID.Validate()); err != nil {
		return RemoveShopServiceCommand{}, err
	}
	return RemoveShopServiceCommand{
		requester: requester,
		shopID:    shopID,
		serviceID: serviceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through NewRemoveShopServiceCommand.
func (c RemoveShopServiceCommand) Validate() error {
	return c.guard.Validate(ErrRemoveShopServiceCommandIsNotConstructed)
}

// Requester returns who asked for the change.
func (c RemoveShopServiceCommand) Requester() kernel.Requester {
	return c.requester
}

// ShopID returns the shop whose catalog changes.
func (c RemoveShopServiceCommand) ShopID() kernel.UUID {
	return c.shopID
}

// ServiceID returns the catalog entry to remove.
func (c RemoveShopServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}
