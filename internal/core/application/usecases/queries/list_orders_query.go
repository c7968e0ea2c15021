package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

// ErrListOrdersQueryIsNotConstructed is returned for a zero value query.
var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery returns all orders in arrival order, optionally only those in one
// status. The kitchen board polls it.
type ListOrdersQuery struct {
	status *order.Status
	guard  guard.ConstructorGuard
}

// NewListOrdersQuery builds a query. An empty status lists every order.
func NewListOrdersQuery(status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	s, err := order.ParseStatus(status)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	q.status = &s
	return q, nil
}

// Validate reports whether the query was built by NewListOrdersQuery.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter and whether one is set.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}
