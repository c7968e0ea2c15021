package order

import (
	"errors"
	"fmt"
	"math"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/sanitize"
)

const (
	MaxCustomerNameLen = 100
	MaxTableLen        = 100
	MaxProductNameLen  = 500
	MaxNoteLen         = 500

	// MaxQuantity keeps quantities representable on every platform.
	MaxQuantity = math.MaxInt32
)

// ItemInput is the raw, unsanitized content of an order line as received from a client.
// Quantity is a float so that non-integral numbers can be reported instead of truncated.
type ItemInput struct {
	ProductName string
	Quantity    float64
	UnitPrice   float64
	Note        string
}

// Item is an order line. It has no identity of its own and is owned by its order.
type Item struct {
	productName string
	quantity    int
	unitPrice   float64
	note        string
}

// NewItem sanitizes and validates in. Error parameter names are prefixed with
// field, e.g. "items[1]." yields "items[1].quantity".
func NewItem(field string, in ItemInput) (Item, error) {
	var item Item
	if err := errors.Join(
		item.setProductName(field, in.ProductName),
		item.setQuantity(field, in.Quantity),
		item.setUnitPrice(field, in.UnitPrice),
		item.setNote(field, in.Note),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

// ProductName returns the sanitized product name.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of units, at least 1.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of one unit, never negative.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Note returns the sanitized kitchen note, possibly empty.
func (i Item) Note() string {
	return i.note
}

func (i *Item) setProductName(field, raw string) error {
	name, err := requiredText(field+"productName", raw, MaxProductNameLen)
	if err != nil {
		return err
	}
	i.productName = name
	return nil
}

func (i *Item) setQuantity(field string, quantity float64) error {
	param := field + "quantity"
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity != math.Trunc(quantity) {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is not an integer", quantity))
	}
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError(param, quantity, 1, MaxQuantity)
	}
	i.quantity = int(quantity)
	return nil
}

func (i *Item) setUnitPrice(field string, price float64) error {
	param := field + "unitPrice"
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is not a finite number", price))
	}
	if price < 0 {
		return errs.NewValueIsOutOfRangeError(param, price, 0, math.Inf(1))
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setNote(field, raw string) error {
	note := sanitize.Text(raw)
	if n := sanitize.Len(note); n > MaxNoteLen {
		return errs.NewValueIsOutOfRangeErrorWithCause(field+"note", n, 0, MaxNoteLen, errTooLong)
	}
	i.note = note
	return nil
}

var errTooLong = errors.New("text is too long")

// requiredText sanitizes raw and checks that 1..maxLen characters remain.
func requiredText(param, raw string, maxLen int) (string, error) {
	text := sanitize.Text(raw)
	n := sanitize.Len(text)
	if n == 0 {
		return "", errs.NewValueIsRequiredError(param)
	}
	if n > maxLen {
		return "", errs.NewValueIsOutOfRangeErrorWithCause(param, n, 1, maxLen, errTooLong)
	}
	return text, nil
}
