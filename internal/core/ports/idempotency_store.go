package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
)

// IdempotencyStore remembers which order a client-supplied idempotency key created,
// for a limited time.
type IdempotencyStore interface {
	// Claim binds key to id unless key is already bound. It returns the id bound
	// to key after the call and whether this call created the binding.
	Claim(ctx context.Context, key string, id kernel.UUID) (bound kernel.UUID, claimed bool, err error)

	// Release removes the binding of key, but only if it still points at id.
	Release(ctx context.Context, key string, id kernel.UUID) error
}
