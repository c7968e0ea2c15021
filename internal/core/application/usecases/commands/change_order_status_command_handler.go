package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// ChangeOrderStatusCommandHandler is what the kitchen calls to advance an order.
type ChangeOrderStatusCommandHandler struct {
	orders ports.OrderRepository
}

// NewChangeOrderStatusCommandHandler builds the handler over orders.
func NewChangeOrderStatusCommandHandler(orders ports.OrderRepository) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{orders: orders}
}

// Handle returns the order after the change. Requesting the current status succeeds
// without changing anything; a backward move fails with errs.StatusTransitionError.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Update(ctx, cmd.OrderID(), func(o *order.Order) error {
		return o.ChangeStatus(cmd.Status())
	})
}
