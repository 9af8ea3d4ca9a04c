package commands_test

import (
	"testing"

	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOfferCommand_ValidInput(t *testing.T) {
	offerID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	price := mustMoney(t, "120.00")

	cmd, err := commands.NewPlaceOfferCommand(offerID, buyerID, []string{"onions", "rice"}, "Lagos", price)
	require.NoError(t, err)
	assert.Equal(t, offerID, cmd.OfferID())
	assert.Equal(t, buyerID, cmd.BuyerID())
	assert.Equal(t, []string{"onions", "rice"}, cmd.Commodities())
	assert.Equal(t, "Lagos", cmd.City())
	assert.True(t, price.IsEqual(cmd.Price()))
}

func TestNewPlaceOfferCommand_InvalidOfferID(t *testing.T) {
	_, err := commands.NewPlaceOfferCommand(
		kernel.UUID{}, kernel.NewUUID(), []string{"onions"}, "Lagos", mustMoney(t, "120.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOfferCommand_EmptyCommodities(t *testing.T) {
	_, err := commands.NewPlaceOfferCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, "Lagos", mustMoney(t, "120.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPlaceOfferCommand_EmptyCity(t *testing.T) {
	_, err := commands.NewPlaceOfferCommand(
		kernel.NewUUID(), kernel.NewUUID(), []string{"onions"}, "", mustMoney(t, "120.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPlaceOfferCommand_ZeroPrice(t *testing.T) {
	_, err := commands.NewPlaceOfferCommand(
		kernel.NewUUID(), kernel.NewUUID(), []string{"onions"}, "Lagos", kernel.Money{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPlaceOfferCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.PlaceOfferCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOfferCommandIsNotConstructed)
}
