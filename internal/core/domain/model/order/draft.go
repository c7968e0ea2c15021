package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrDraftIsNotConstructed is returned when a Draft was not built by NewDraft.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

// Draft is sanitized and validated order input. It carries no identity and is
// never stored on its own; NewOrder and Order.Edit consume it.
type Draft struct {
	customerName string
	table        string
	items        []Item
	guard        guard.ConstructorGuard
}

// NewDraft sanitizes every free-text field and validates the whole input. All
// violations are returned together, each naming its field.
func NewDraft(customerName, table string, items []ItemInput) (Draft, error) {
	d := Draft{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setCustomerName(customerName),
		d.setTable(table),
		d.setItems(items),
	); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Validate reports whether the draft was built by NewDraft.
func (d Draft) Validate() error {
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

// CustomerName returns the sanitized customer name.
func (d Draft) CustomerName() string {
	return d.customerName
}

// Table returns the sanitized table label.
func (d Draft) Table() string {
	return d.table
}

// Items returns a copy of the draft's items.
func (d Draft) Items() []Item {
	return append([]Item(nil), d.items...)
}

func (d *Draft) setCustomerName(raw string) error {
	name, err := requiredText("customerName", raw, MaxCustomerNameLen)
	if err != nil {
		return err
	}
	d.customerName = name
	return nil
}

func (d *Draft) setTable(raw string) error {
	table, err := requiredText("table", raw, MaxTableLen)
	if err != nil {
		return err
	}
	d.table = table
	return nil
}

func (d *Draft) setItems(inputs []ItemInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]Item, 0, len(inputs))
	var problems []error
	for idx, in := range inputs {
		item, err := NewItem(fmt.Sprintf("items[%d].", idx), in)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	d.items = items
	return nil
}
