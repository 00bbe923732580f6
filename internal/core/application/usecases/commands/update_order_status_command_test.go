package commands_test

import (
	"testing"

	"serados/internal/core/application/usecases/commands"
	"serados/internal/core/domain/model/order"
	"serados/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand("SER123", "preparing")

		require.NoError(t, err)
		assert.Equal(t, "SER123", cmd.OrderRef())
		assert.Equal(t, order.Preparing, cmd.Status())
		require.NoError(t, cmd.Validate())
	})

	t.Run("numeric_reference_is_accepted", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand("7", "ready")

		require.NoError(t, err)
		assert.Equal(t, "7", cmd.OrderRef())
	})

	t.Run("status_outside_the_set_is_rejected", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("SER123", "flying")

		require.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("empty_reference_is_rejected", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand("", "preparing")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}
