// Package postgres provides the GORM implementation of the Unit of Work pattern.
//
// A unit of work opens one transaction and hands out repositories bound to it,
// so an order status change and the shop counter it touches commit together.
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	s, err := uow.ShopRepository().GetForUpdate(ctx, shopID)
//	// ... mutate s
//	if err := uow.ShopRepository().Update(ctx, s); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin use the plain connection and run in
// autocommit mode. Each goroutine must create its own unit of work.
package postgres

import (
	"context"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/shoprepo"
	"laundry/internal/adapters/out/postgres/ticketrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over db.
//
// Example:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. A second call on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open,
// which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns a repository using the open transaction, or the
// pool when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ShopRepository returns a repository using the open transaction, or the
// pool when none is open.
func (uow *GormUnitOfWork) ShopRepository() ports.ShopRepository {
	return shoprepo.NewGormShopRepository(uow.conn(), uow)
}

// TicketRepository returns a repository using the open transaction, or the
// pool when none is open.
func (uow *GormUnitOfWork) TicketRepository() ports.TicketRepository {
	return ticketrepo.NewGormTicketRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs lists the ids written so far, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		ids = append(ids, tracked.ID)
	}
	return ids
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
