package memory

import (
	"context"
	"errors"

	"laundry/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback outside Begin.
var ErrNoTransaction = errors.New("memory: no active transaction")

// UnitOfWorkFactory implements ports.UnitOfWorkFactory over a Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory over store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a unit of work that has not begun.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes until Commit. Repositories taken before Begin
// write straight to the store.
type UnitOfWork struct {
	store *Store
	tx    *staged
}

// Begin waits until no other unit of work is open, or ctx is done.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	select {
	case uow.store.txSlot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	uow.tx = newStaged()
	return nil
}

// Commit applies the staged writes at once and releases the store.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	tx := uow.tx
	uow.tx = nil
	defer func() { <-uow.store.txSlot }()

	s := uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, o := range tx.orders {
		s.orders[id] = o
	}
	for id, sh := range tx.shops {
		s.shops[id] = sh
	}
	for id, t := range tx.tickets {
		s.tickets[id] = t
	}
	for id, delta := range tx.counters {
		s.counters[id] += delta
	}
	return nil
}

// Rollback drops the staged writes and releases the store.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoTransaction
	}
	uow.tx = nil
	<-uow.store.txSlot
	return nil
}

// OrderRepository returns a repository bound to the current transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{view: uow.view()}
}

// ShopRepository returns a repository bound to the current transaction.
func (uow *UnitOfWork) ShopRepository() ports.ShopRepository {
	return &ShopRepository{view: uow.view()}
}

// TicketRepository returns a repository bound to the current transaction.
func (uow *UnitOfWork) TicketRepository() ports.TicketRepository {
	return &TicketRepository{view: uow.view()}
}

func (uow *UnitOfWork) view() view {
	return view{store: uow.store, tx: uow.tx}
}
