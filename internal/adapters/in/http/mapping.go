package http

import (
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
)

func toDraft(body servers.NewOrder) (order.Draft, error) {
	items := make([]order.ItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		note := ""
		if item.Note != nil {
			note = *item.Note
		}
		items = append(items, order.ItemInput{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Note:        note,
		})
	}

	return order.NewDraft(body.CustomerName, body.Table, items)
}

func toOrderResponse(view queries.OrderView) servers.Order {
	items := make([]servers.Item, 0, len(view.Items))
	for _, item := range view.Items {
		note := item.Note
		items = append(items, servers.Item{
			ProductName: item.ProductName,
			Quantity:    float64(item.Quantity),
			UnitPrice:   item.UnitPrice,
			Note:        &note,
		})
	}

	return servers.Order{
		Id:           view.ID.Bytes(),
		CustomerName: view.CustomerName,
		Table:        view.Table,
		Items:        items,
		Status:       servers.OrderStatus(view.Status.String()),
		CreatedAt:    view.CreatedAt.UTC(),
	}
}
