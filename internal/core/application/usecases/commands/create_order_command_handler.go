package commands

import (
	"context"
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// ErrIdempotentRequestInProgress is returned when the idempotency key of a create
// request is already bound to an order that has not been stored yet, i.e. the
// original request is still being handled.
var ErrIdempotentRequestInProgress = errors.New("a request with this idempotency key is still in progress")

// ErrOrderNotPublished is returned when an order was stored but could not be handed
// to the kitchen. The order stays stored and its idempotency key stays bound.
var ErrOrderNotPublished = errors.New("order was stored but not published")

// CreateOrderCommandHandler accepts new orders: it assigns identity and creation time,
// stores the order as pending, publishes it for the kitchen and, when the command
// carries an idempotency key, replays the order created earlier under the same key.
type CreateOrderCommandHandler struct {
	orders      ports.OrderRepository
	ids         kernel.IdentityProvider
	idempotency ports.IdempotencyStore
	events      ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler builds the handler. idempotency may be nil, in which
// case idempotency keys are ignored. events may be nil, in which case accepted orders
// are only stored.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	ids kernel.IdentityProvider,
	idempotency ports.IdempotencyStore,
	events ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:      orders,
		ids:         ids,
		idempotency: idempotency,
		events:      events,
	}
}

// Handle returns the created order, or the previously created one for a replayed key.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id := h.ids.NewID()

	key := cmd.IdempotencyKey()
	if key == "" || h.idempotency == nil {
		created, err := h.create(ctx, id, cmd.Draft())
		if err != nil {
			return nil, err
		}
		return h.publish(ctx, created)
	}

	bound, claimed, err := h.idempotency.Claim(ctx, key, id)
	if err != nil {
		return nil, fmt.Errorf("claim idempotency key: %w", err)
	}
	if !claimed {
		return h.replay(ctx, bound)
	}

	created, err := h.create(ctx, id, cmd.Draft())
	if err != nil {
		if releaseErr := h.idempotency.Release(ctx, key, id); releaseErr != nil {
			err = errors.Join(err, fmt.Errorf("release idempotency key: %w", releaseErr))
		}
		return nil, err
	}
	return h.publish(ctx, created)
}

func (h CreateOrderCommandHandler) create(ctx context.Context, id kernel.UUID, draft order.Draft) (*order.Order, error) {
	o, err := order.NewOrder(id, draft, h.ids.Now())
	if err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// publish runs only after the order is stored. Replays are never published again.
func (h CreateOrderCommandHandler) publish(ctx context.Context, created *order.Order) (*order.Order, error) {
	if h.events == nil {
		return created, nil
	}
	if err := h.events.PublishOrderCreated(ctx, created); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderNotPublished, err)
	}
	return created, nil
}

func (h CreateOrderCommandHandler) replay(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	o, err := h.orders.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrIdempotentRequestInProgress
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}
