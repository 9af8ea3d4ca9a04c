package commands_test

import (
	"testing"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceDeliveryCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceDeliveryCommand(orderID, dispatch.Delivered)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, dispatch.Delivered, cmd.Outcome())

	cmd, err = commands.NewAdvanceDeliveryCommand(orderID, dispatch.Failed)
	require.NoError(t, err)
	assert.Equal(t, dispatch.Failed, cmd.Outcome())
}

func TestNewAdvanceDeliveryCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewAdvanceDeliveryCommand(kernel.UUID{}, dispatch.Delivered)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAdvanceDeliveryCommand_NonTerminalOutcome(t *testing.T) {
	_, err := commands.NewAdvanceDeliveryCommand(kernel.NewUUID(), dispatch.InTransit)
	require.Error(t, err)
	assert.ErrorIs(t, err, dispatch.ErrInvalidDeliveryState)
}

func TestNewAdvanceDeliveryCommand_UnknownOutcome(t *testing.T) {
	_, err := commands.NewAdvanceDeliveryCommand(kernel.NewUUID(), dispatch.UnknownDeliveryStatus)
	require.Error(t, err)
}

func TestAdvanceDeliveryCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.AdvanceDeliveryCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceDeliveryCommandIsNotConstructed)
}
