package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository is the single source of truth for current orders.
// Implementations hand out copies: mutating a returned order never changes stored state.
type OrderRepository interface {
	// Add stores a new order. Adding an id that already exists fails.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given id or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update runs mutate against a copy of the stored order while holding the lock
	// of that id and stores the copy if mutate returns nil. Concurrent Update calls
	// for the same id are serialized; different ids do not wait for each other.
	Update(ctx context.Context, id kernel.UUID, mutate func(*order.Order) error) (*order.Order, error)

	// List returns every order in the order it was added.
	List(ctx context.Context) ([]*order.Order, error)
}
