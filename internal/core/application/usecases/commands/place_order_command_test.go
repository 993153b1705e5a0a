package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	actor := newTestActor(t, account.Customer)
	items := []services.ItemRequest{{ProductID: kernel.NewUUID(), Quantity: 2}}

	t.Run("creates valid pickup command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), actor, order.Pickup, "", "extra napkins", items)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.Pickup, cmd.OrderType())
		assert.Equal(t, "extra napkins", cmd.Note())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("requires address for delivery", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), actor, order.Delivery, "", "", items)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), actor, order.Pickup, "", "", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), actor, order.Pickup, "", "",
			[]services.ItemRequest{{ProductID: kernel.NewUUID(), Quantity: 0}})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects unconstructed actor", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), account.Actor{}, order.Pickup, "", "", items)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
