package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderEventPublisher hands accepted orders to the kitchen. Implementations publish
// once per call; deduplication is the consumer's concern.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, o *order.Order) error
}
