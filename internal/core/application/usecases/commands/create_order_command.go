package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// MaxIdempotencyKeyLen bounds the Idempotency-Key a client may send.
const MaxIdempotencyKeyLen = 255

// ErrCreateOrderCommandIsNotConstructed is returned for a zero value command.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks to accept a draft as a new pending order.
//
// Example:
//
//	draft, err := order.NewDraft("Ana", "5", items)
//	cmd, err := NewCreateOrderCommand(draft, c.Request().Header.Get("Idempotency-Key"))
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	draft          order.Draft
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates draft and the optional idempotency key. An empty
// key disables replay protection.
func NewCreateOrderCommand(draft order.Draft, idempotencyKey string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraft(draft),
		cmd.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate reports whether the command was built by NewCreateOrderCommand.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Draft returns the validated order content.
func (c CreateOrderCommand) Draft() order.Draft {
	return c.draft
}

// IdempotencyKey returns the trimmed key, or "" when none was supplied.
func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setDraft(draft order.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	c.draft = draft
	return nil
}

func (c *CreateOrderCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if n := utf8.RuneCountInString(key); n > MaxIdempotencyKeyLen {
		return errs.NewValueIsOutOfRangeError("idempotencyKey", n, 0, MaxIdempotencyKeyLen)
	}
	c.idempotencyKey = key
	return nil
}
