package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned for a zero value command.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the customer name, table and items of a pending order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	draft   order.Draft

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the order id and the replacement content.
func NewUpdateOrderCommand(orderID kernel.UUID, draft order.Draft) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDraft(draft),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate reports whether the command was built by NewUpdateOrderCommand.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Draft returns the replacement content.
func (c UpdateOrderCommand) Draft() order.Draft {
	return c.draft
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDraft(draft order.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	c.draft = draft
	return nil
}
