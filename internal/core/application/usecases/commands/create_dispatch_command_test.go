package commands_test

import (
	"testing"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDispatchCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	lotID := kernel.NewUUID()
	offerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	cost := mustMoney(t, "15.00")

	cmd, err := commands.NewCreateDispatchCommand(orderID, lotID, offerID, driverID, cost)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, lotID, cmd.LotID())
	assert.Equal(t, offerID, cmd.OfferID())
	assert.Equal(t, driverID, cmd.DriverID())
	assert.True(t, cost.IsEqual(cmd.TransportCost()))
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateDispatchCommand_ZeroCostIsAllowed(t *testing.T) {
	cmd, err := commands.NewCreateDispatchCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.Money{})
	require.NoError(t, err)
	assert.True(t, cmd.TransportCost().IsZero())
}

func TestNewCreateDispatchCommand_InvalidIDs(t *testing.T) {
	valid := kernel.NewUUID()
	cost := mustMoney(t, "15.00")

	_, err := commands.NewCreateDispatchCommand(kernel.UUID{}, valid, valid, valid, cost)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewCreateDispatchCommand(valid, kernel.UUID{}, valid, valid, cost)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewCreateDispatchCommand(valid, valid, kernel.UUID{}, valid, cost)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewCreateDispatchCommand(valid, valid, valid, kernel.UUID{}, cost)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateDispatchCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.CreateDispatchCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDispatchCommandIsNotConstructed)
}
