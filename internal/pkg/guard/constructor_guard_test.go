package guard_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("ticket must be created via NewTicket")

	t.Run("constructed_guard_passes_with_custom_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
	})

	t.Run("constructed_guard_passes_with_nil_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	type ticket struct {
		table string
		guard guard.ConstructorGuard
	}
	errTicketNotConstructed := errors.New("ticket must be created via newTicket")

	newTicket := func(table string) (ticket, error) {
		if table == "" {
			return ticket{}, errors.New("table is required")
		}
		return ticket{table: table, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_is_valid", func(t *testing.T) {
		tk, err := newTicket("5")

		require.NoError(t, err)
		require.NoError(t, tk.guard.Validate(errTicketNotConstructed))
		assert.Equal(t, "5", tk.table)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		tk, err := newTicket("")

		require.Error(t, err)
		assert.ErrorIs(t, tk.guard.Validate(errTicketNotConstructed), errTicketNotConstructed)
	})

	t.Run("struct_literal_is_invalid", func(t *testing.T) {
		tk := ticket{table: "7"}

		assert.ErrorIs(t, tk.guard.Validate(errTicketNotConstructed), errTicketNotConstructed)
	})
}
