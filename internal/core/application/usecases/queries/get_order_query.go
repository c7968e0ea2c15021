package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned for a zero value query.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery looks up one order by the id a client sent. The id is kept as raw
// text: an id that is not a UUID simply matches no order.
//
// Example:
//
//	query := NewGetOrderQuery(c.Param("id"))
//	view, found, err := handler.Handle(ctx, query)
//	if !found {
//	    return c.JSON(http.StatusNotFound, ...)
//	}
type GetOrderQuery struct {
	orderID string
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery takes the raw id from the request path; it is parsed by the handler.
func NewGetOrderQuery(orderID string) GetOrderQuery {
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

// Validate reports whether the query was built by NewGetOrderQuery.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the raw requested id.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}
