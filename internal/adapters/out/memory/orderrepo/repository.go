// Package orderrepo keeps orders in process memory.
//
// Each order has its own lock. The repository-wide lock only guards the index and is
// held for map lookups and inserts, never while an order is being read or mutated,
// so work on different orders proceeds independently.
package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// ErrDuplicateOrderID is returned by Add when the id is already stored.
var ErrDuplicateOrderID = errors.New("order id already exists")

type entry struct {
	mu    sync.Mutex
	order *order.Order
}

// InMemoryOrderRepository implements ports.OrderRepository.
type InMemoryOrderRepository struct {
	mu      sync.RWMutex
	entries map[kernel.UUID]*entry
	ids     []kernel.UUID
}

// NewInMemoryOrderRepository returns an empty repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		entries: make(map[kernel.UUID]*entry),
	}
}

// Add stores a copy of aggregate.
func (r *InMemoryOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID()
	if _, ok := r.entries[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateOrderID, id)
	}
	r.entries[id] = &entry{order: aggregate.Clone()}
	r.ids = append(r.ids, id)
	return nil
}

// Get returns a copy of the stored order or an errs.ObjectNotFoundError.
func (r *InMemoryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.order.Clone(), nil
}

// Update runs mutate on a copy of the order while holding that order's lock and
// stores the copy only when mutate returns nil.
//
// Returns:
//   - the stored copy after a successful mutation
//   - errs.ObjectNotFoundError when id is unknown
//   - the error of mutate, with the stored order left untouched
func (r *InMemoryOrderRepository) Update(
	ctx context.Context,
	id kernel.UUID,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.order.Clone()
	if err = mutate(working); err != nil {
		return nil, err
	}
	if err = working.Validate(); err != nil {
		return nil, err
	}

	e.order = working
	return working.Clone(), nil
}

// List returns copies of all orders in insertion order.
func (r *InMemoryOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	snapshot := make([]*entry, 0, len(r.ids))
	for _, id := range r.ids {
		snapshot = append(snapshot, r.entries[id])
	}
	r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(snapshot))
	for _, e := range snapshot {
		e.mu.Lock()
		orders = append(orders, e.order.Clone())
		e.mu.Unlock()
	}
	return orders, nil
}

func (r *InMemoryOrderRepository) lookup(id kernel.UUID) (*entry, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return e, nil
}
