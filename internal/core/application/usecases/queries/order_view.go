// Package queries contains the read side of the order service.
package queries

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderView is a read-only snapshot of an order.
type OrderView struct {
	ID           kernel.UUID
	CustomerName string
	Table        string
	Items        []ItemView
	Status       order.Status
	CreatedAt    time.Time
}

// ItemView is a read-only snapshot of an order line.
type ItemView struct {
	ProductName string
	Quantity    int
	UnitPrice   float64
	Note        string
}

// NewOrderView snapshots o.
func NewOrderView(o *order.Order) OrderView {
	items := o.Items()
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Note:        item.Note(),
		})
	}

	return OrderView{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Table:        o.Table(),
		Items:        views,
		Status:       o.Status(),
		CreatedAt:    o.CreatedAt(),
	}
}
