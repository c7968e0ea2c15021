package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// UpdateOrderCommandHandler edits pending orders. The editability check and the write
// happen inside a single repository Update, so a concurrent status change cannot slip
// in between them.
type UpdateOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewUpdateOrderCommandHandler builds the handler over orders.
func NewUpdateOrderCommandHandler(orders ports.OrderRepository) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{orders: orders}
}

// Handle returns the edited order. It fails with errs.ObjectNotFoundError when the
// order does not exist and errs.EditConflictError when it is no longer pending.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Update(ctx, cmd.OrderID(), func(o *order.Order) error {
		return o.Edit(cmd.Draft())
	})
}
