package commands_test

import (
	"testing"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportHarvestCommand_ValidInput(t *testing.T) {
	lotID := kernel.NewUUID()
	producerID := kernel.NewUUID()

	cmd, err := commands.NewReportHarvestCommand(lotID, producerID, "Onions", 40, "Kano")
	require.NoError(t, err)
	assert.Equal(t, lotID, cmd.LotID())
	assert.Equal(t, producerID, cmd.ProducerID())
	assert.Equal(t, "Onions", cmd.Commodity())
	assert.Equal(t, 40, cmd.Quantity())
	assert.Equal(t, "Kano", cmd.City())
}

func TestNewReportHarvestCommand_InvalidLotID(t *testing.T) {
	_, err := commands.NewReportHarvestCommand(kernel.UUID{}, kernel.NewUUID(), "onions", 40, "Kano")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewReportHarvestCommand_EmptyCommodity(t *testing.T) {
	_, err := commands.NewReportHarvestCommand(kernel.NewUUID(), kernel.NewUUID(), "  ", 40, "Kano")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewReportHarvestCommand_NonPositiveQuantity(t *testing.T) {
	_, err := commands.NewReportHarvestCommand(kernel.NewUUID(), kernel.NewUUID(), "onions", 0, "Kano")
	require.Error(t, err)

	_, err = commands.NewReportHarvestCommand(kernel.NewUUID(), kernel.NewUUID(), "onions", -3, "Kano")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewReportHarvestCommand_EmptyCity(t *testing.T) {
	_, err := commands.NewReportHarvestCommand(kernel.NewUUID(), kernel.NewUUID(), "onions", 40, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestReportHarvestCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.ReportHarvestCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrReportHarvestCommandIsNotConstructed)
}
