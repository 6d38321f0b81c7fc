package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/guard"
)

// ErrUpdateShopCommandIsNotConstructed is returned when an UpdateShopCommand
// was not created through NewUpdateShopCommand.
var ErrUpdateShopCommandIsNotConstructed = errors.New(
	"UpdateShopCommand must be created via NewUpdateShopCommand constructor",
)

// UpdateShopCommand applies an owner's patch to a shop.
type UpdateShopCommand struct { //nolint:recvcheck //using for validation
	requester kernel.Requester
	shopID    kernel.UUID
	patch     shop.Patch

	guard guard.ConstructorGuard
}

// NewUpdateShopCommand creates a command that applies patch to a shop the
// requester owns.
//
// Returns:
//   - UpdateShopCommand: the command
//   - error: joined validation errors of requester and shopID
func NewUpdateShopCommand(requester kernel.Requester, shopID kernel.UUID, patch shop.Patch) (UpdateShopCommand, error) {
	if err := errors.Join(requester.Validate(), shopID.Validate()); err != nil {
		return UpdateShopCommand{}, err
	}
	return UpdateShopCommand{
		requester: requester,
		shopID:    shopID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through NewUpdateShopCommand.
// Returns ErrUpdateShopCommandIsNotConstructed if validation fails.
func (c UpdateShopCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShopCommandIsNotConstructed)
}

// Requester returns who issued the command.
func (c UpdateShopCommand) Requester() kernel.Requester {
	return c.requester
}

// ShopID returns the shop the command targets.
func (c UpdateShopCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Patch returns the fields to change.
func (c UpdateShopCommand) Patch() shop.Patch {
	return c.patch
}
