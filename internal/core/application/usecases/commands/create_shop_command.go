package commands

import (
	"errors"
	"slices"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/guard"
)

// ErrCreateShopCommandIsNotConstructed is returned when a CreateShopCommand
// was not created through NewCreateShopCommand.
var ErrCreateShopCommandIsNotConstructed = errors.New(
	"CreateShopCommand must be created via NewCreateShopCommand constructor",
)

// CreateShopCommand registers a new shop owned by the requester.
type CreateShopCommand struct { //nolint:recvcheck //using for validation
	requester kernel.Requester
	profile   shop.Profile
	services  []shop.ServiceDraft

	guard guard.ConstructorGuard
}

// NewCreateShopCommand checks the requester only; the profile and the catalog
// are validated by the Shop aggregate so every rule lives in one place.
func NewCreateShopCommand(
	requester kernel.Requester, profile shop.Profile, services []shop.ServiceDraft,
) (CreateShopCommand, error) {
	if err := requester.Validate(); err != nil {
		return CreateShopCommand{}, err
	}
	return CreateShopCommand{
		requester: requester,
		profile:   profile,
		services:  slices.Clone(services),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through NewCreateShopCommand.
// Returns ErrCreateShopCommandIsNotConstructed if validation fails.
func (c CreateShopCommand) Validate() error {
	return c.guard.Validate(ErrCreateShopCommandIsNotConstructed)
}

// Requester returns who issued the command.
func (c CreateShopCommand) Requester() kernel.Requester {
	return c.requester
}

// Profile returns the descriptive fields of the new shop.
func (c CreateShopCommand) Profile() shop.Profile {
	return c.profile
}

// Services returns the initial catalog.
func (c CreateShopCommand) Services() []shop.ServiceDraft {
	return slices.Clone(c.services)
}
