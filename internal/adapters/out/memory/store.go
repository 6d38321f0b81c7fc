// Package memory is a process-local storage driver. It implements the
// persistence ports with mutex-guarded maps and backs STORAGE_DRIVER=memory
// as well as end-to-end tests of the use cases.
//
// Single-call operations (UpdateStatus, IncrementTotalOrders) hold the write
// lock for their whole read-check-write, which gives them the same atomicity
// as the conditional UPDATE of the postgres driver. Units of work stage their
// writes and apply them under the write lock on Commit; at most one unit of
// work is open at a time.
package memory

import (
	"context"
	"sync"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/domain/model/ticket"
)

// Store holds the committed state. Aggregates in the maps are private copies
// and are never handed out.
type Store struct {
	mu      sync.RWMutex
	orders  map[kernel.UUID]*order.Order
	shops   map[kernel.UUID]*shop.Shop
	tickets map[kernel.UUID]*ticket.Ticket

	// counters is the authoritative totalOrders of each shop; the value
	// carried by the stored shop aggregate is ignored.
	counters map[kernel.UUID]int

	// txSlot admits one open unit of work.
	txSlot chan struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders:   make(map[kernel.UUID]*order.Order),
		shops:    make(map[kernel.UUID]*shop.Shop),
		tickets:  make(map[kernel.UUID]*ticket.Ticket),
		counters: make(map[kernel.UUID]int),
		txSlot:   make(chan struct{}, 1),
	}
}

// OrderRepository returns a repository writing straight to the committed state.
func (s *Store) OrderRepository() *OrderRepository {
	return &OrderRepository{view: view{store: s}}
}

// ShopRepository returns a repository writing straight to the committed state.
func (s *Store) ShopRepository() *ShopRepository {
	return &ShopRepository{view: view{store: s}}
}

// TicketRepository returns a repository writing straight to the committed state.
func (s *Store) TicketRepository() *TicketRepository {
	return &TicketRepository{view: view{store: s}}
}

// staged collects the writes of an open unit of work.
type staged struct {
	orders   map[kernel.UUID]*order.Order
	shops    map[kernel.UUID]*shop.Shop
	tickets  map[kernel.UUID]*ticket.Ticket
	counters map[kernel.UUID]int
}

func newStaged() *staged {
	return &staged{
		orders:   make(map[kernel.UUID]*order.Order),
		shops:    make(map[kernel.UUID]*shop.Shop),
		tickets:  make(map[kernel.UUID]*ticket.Ticket),
		counters: make(map[kernel.UUID]int),
	}
}

// view is what a repository sees: the committed maps, overlaid with the
// writes staged by its unit of work when tx is set.
type view struct {
	store *Store
	tx    *staged
}

func (v view) read(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()
	return fn()
}

// write runs fn under the write lock, or under the read lock when the
// changes only go to the staged set.
func (v view) write(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v.tx != nil {
		v.store.mu.RLock()
		defer v.store.mu.RUnlock()
		return fn()
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn()
}

func (v view) order(id kernel.UUID) (*order.Order, bool) {
	if v.tx != nil {
		if o, ok := v.tx.orders[id]; ok {
			return o, true
		}
	}
	o, ok := v.store.orders[id]
	return o, ok
}

func (v view) allOrders() []*order.Order {
	return overlay(v.store.orders, v.stagedOrders())
}

func (v view) putOrder(o *order.Order) {
	if v.tx != nil {
		v.tx.orders[o.ID()] = o
		return
	}
	v.store.orders[o.ID()] = o
}

func (v view) stagedOrders() map[kernel.UUID]*order.Order {
	if v.tx == nil {
		return nil
	}
	return v.tx.orders
}

func (v view) shop(id kernel.UUID) (*shop.Shop, bool) {
	if v.tx != nil {
		if s, ok := v.tx.shops[id]; ok {
			return s, true
		}
	}
	s, ok := v.store.shops[id]
	return s, ok
}

func (v view) allShops() []*shop.Shop {
	var pending map[kernel.UUID]*shop.Shop
	if v.tx != nil {
		pending = v.tx.shops
	}
	return overlay(v.store.shops, pending)
}

func (v view) putShop(s *shop.Shop) {
	if v.tx != nil {
		v.tx.shops[s.ID()] = s
		return
	}
	v.store.shops[s.ID()] = s
}

func (v view) counter(id kernel.UUID) int {
	n := v.store.counters[id]
	if v.tx != nil {
		n += v.tx.counters[id]
	}
	return n
}

func (v view) addToCounter(id kernel.UUID, delta int) {
	if v.tx != nil {
		v.tx.counters[id] += delta
		return
	}
	v.store.counters[id] += delta
}

// loadShop returns a copy of the shop carrying its current counter.
func (v view) loadShop(id kernel.UUID) (*shop.Shop, bool, error) {
	s, ok := v.shop(id)
	if !ok {
		return nil, false, nil
	}
	c, err := cloneShop(s, v.counter(id))
	return c, err == nil, err
}

func (v view) ticket(id kernel.UUID) (*ticket.Ticket, bool) {
	if v.tx != nil {
		if t, ok := v.tx.tickets[id]; ok {
			return t, true
		}
	}
	t, ok := v.store.tickets[id]
	return t, ok
}

func (v view) allTickets() []*ticket.Ticket {
	var pending map[kernel.UUID]*ticket.Ticket
	if v.tx != nil {
		pending = v.tx.tickets
	}
	return overlay(v.store.tickets, pending)
}

func (v view) putTicket(t *ticket.Ticket) {
	if v.tx != nil {
		v.tx.tickets[t.ID()] = t
		return
	}
	v.store.tickets[t.ID()] = t
}

func overlay[T any](committed, pending map[kernel.UUID]T) []T {
	out := make([]T, 0, len(committed)+len(pending))
	for id, v := range committed {
		if _, shadowed := pending[id]; !shadowed {
			out = append(out, v)
		}
	}
	for _, v := range pending {
		out = append(out, v)
	}
	return out
}
