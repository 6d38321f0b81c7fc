// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization, transaction
// management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShopRepoFactory provides access to the shop repository within a transaction.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// TicketRepoFactory provides access to the ticket repository within a transaction.
	TicketRepoFactory interface {
		TicketRepository() ports.TicketRepository
	}

	// ShopUoW manages transactions for shop directory operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   s, err := uow.ShopRepository().GetForUpdate(ctx, id)
	//   // ... mutate and Update
	//
	//   err = uow.Commit(ctx)
	ShopUoW interface {
		TxManager
		ShopRepoFactory
	}

	// ShopUoWFactory creates new shop unit of work instances.
	ShopUoWFactory interface {
		Create() ShopUoW
	}

	// TicketUoW manages transactions for ticketing operations.
	TicketUoW interface {
		TxManager
		TicketRepoFactory
	}

	// TicketUoWFactory creates new ticket unit of work instances.
	TicketUoWFactory interface {
		Create() TicketUoW
	}
)

// ShopUoWFactoryFrom narrows a ports.UnitOfWorkFactory to ShopUoWFactory.
func ShopUoWFactoryFrom(factory ports.UnitOfWorkFactory) ShopUoWFactory {
	return shopUoWFactory{factory: factory}
}

// TicketUoWFactoryFrom narrows a ports.UnitOfWorkFactory to TicketUoWFactory.
func TicketUoWFactoryFrom(factory ports.UnitOfWorkFactory) TicketUoWFactory {
	return ticketUoWFactory{factory: factory}
}

type shopUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

// Create opens a unit of work scoped to shops.
func (f shopUoWFactory) Create() ShopUoW {
	return f.factory.Create()
}

type ticketUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

// Create opens a unit of work scoped to tickets.
func (f ticketUoWFactory) Create() TicketUoW {
	return f.factory.Create()
}
