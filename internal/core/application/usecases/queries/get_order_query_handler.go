package queries

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler builds the handler over orders.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle reports a missing order as found == false rather than as an error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, bool, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, false, err
	}

	id, err := kernel.UUIDFromString(query.OrderID())
	if err != nil || id.Validate() != nil {
		return OrderView{}, false, nil
	}

	o, err := h.orders.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OrderView{}, false, nil
	}
	if err != nil {
		return OrderView{}, false, err
	}

	return NewOrderView(o), true, nil
}
