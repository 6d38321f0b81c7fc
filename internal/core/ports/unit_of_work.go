package ports

import "context"

// UnitOfWorkFactory hands out a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes the repositories of one command to a single transaction.
// Callers pair Begin with a deferred Rollback and finish with Commit. Rollback
// after Commit reports that no transaction is open and changes nothing.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ShopRepository() ShopRepository
	TicketRepository() TicketRepository
}
