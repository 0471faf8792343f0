package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func validItems() []commands.CreateOrderItem {
	return []commands.CreateOrderItem{
		{ProductID: kernel.NewUUID(), Quantity: 2},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid command constructs", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			validItems(), kernel.ZeroMoney(), nil, order.Pix, "gift wrap please")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("empty items rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			nil, kernel.ZeroMoney(), nil, order.Pix, "")
		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		items := []commands.CreateOrderItem{{ProductID: kernel.NewUUID(), Quantity: 0}}
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			items, kernel.ZeroMoney(), nil, order.Pix, "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
