package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root: the accepted content of a Draft plus an immutable id,
// an immutable creation instant and a status.
//
// Invariants:
//   - id and createdAt never change after construction
//   - a new order is Pending; status only moves forward
//   - content changes (Edit) are accepted only while the order is Pending
//
// Orders are not safe for concurrent mutation. The repository hands out clones and
// serializes read-modify-write cycles per id.
type Order struct {
	id           kernel.UUID
	customerName string
	table        string
	items        []Item
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewOrder accepts draft as a new pending order.
//
//	draft, err := order.NewDraft("Ana", "5", []order.ItemInput{{ProductName: "Taco", Quantity: 2, UnitPrice: 3.5}})
//	o, err := order.NewOrder(ids.NewID(), draft, ids.Now())
func NewOrder(id kernel.UUID, draft Draft, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCreatedAt(createdAt),
		o.setContent(draft),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate reports whether the order was built by NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity only.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the immutable order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the sanitized customer name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Table returns the sanitized table label.
func (o *Order) Table() string {
	return o.table
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the acceptance instant in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Edit replaces customer name, table and items with those of draft. It fails with
// an EditConflictError once the kitchen has started on the order.
func (o *Order) Edit(draft Draft) error {
	if !o.status.IsEditable() {
		return errs.NewEditConflictError("order", o.id, o.status.String())
	}
	return o.setContent(draft)
}

// ChangeStatus moves the order forward to next. Changing to the current status
// is a no-op.
func (o *Order) ChangeStatus(next Status) error {
	status, err := o.status.ChangeTo(next)
	if err != nil {
		return err
	}
	o.status = status
	return nil
}

// Clone returns a deep copy that shares no mutable state with o.
func (o *Order) Clone() *Order {
	c := *o
	c.items = o.Items()
	return &c
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

func (o *Order) setContent(draft Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	o.customerName = draft.CustomerName()
	o.table = draft.Table()
	o.items = draft.Items()
	return nil
}
