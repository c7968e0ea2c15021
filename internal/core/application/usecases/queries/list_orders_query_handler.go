package queries

import (
	"context"

	"orders/internal/core/ports"
)

// ListOrdersQueryHandler lists orders for the kitchen board.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersQueryHandler builds the handler over orders.
func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle returns views of the stored orders in arrival order, keeping only the
// requested status when the query carries one. An empty store yields an empty slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	status, filtered := query.Status()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		if filtered && o.Status() != status {
			continue
		}
		views = append(views, NewOrderView(o))
	}
	return views, nil
}
