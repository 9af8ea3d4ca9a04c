package offer_test

import (
	"testing"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCity(t *testing.T, name string) kernel.City {
	t.Helper()
	city, err := kernel.NewCity(name)
	require.NoError(t, err)
	return city
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.ParseMoney(s)
	require.NoError(t, err)
	return m
}

func newOffer(t *testing.T, commodities []string) *offer.BuyerOffer {
	t.Helper()
	o, err := offer.NewBuyerOffer(
		kernel.NewUUID(), kernel.NewUUID(), commodities,
		mustCity(t, "Lagos"), mustMoney(t, "120.00"), time.Now())
	require.NoError(t, err)
	return o
}

func TestNewBuyerOffer(t *testing.T) {
	t.Run("valid offer is active", func(t *testing.T) {
		o := newOffer(t, []string{"tomatoes"})

		require.NoError(t, o.Validate())
		assert.True(t, o.IsActive())
		assert.Equal(t, "Lagos", o.Destination().Name())
		assert.Equal(t, int64(12000), o.Price().MinorUnits())
	})

	t.Run("commodities are deduplicated and normalized", func(t *testing.T) {
		o := newOffer(t, []string{"Tomatoes", "tomatoes", " Onions "})

		assert.Equal(t, []string{"onions", "tomatoes"}, o.Commodities())
		assert.True(t, o.Accepts("TOMATOES"))
		assert.True(t, o.Accepts("onions"))
		assert.False(t, o.Accepts("yams"))
	})

	t.Run("rejects empty commodity set", func(t *testing.T) {
		_, err := offer.NewBuyerOffer(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			mustCity(t, "Lagos"), mustMoney(t, "10.00"), time.Now())
		require.Error(t, err)
	})

	t.Run("rejects blank commodity name", func(t *testing.T) {
		_, err := offer.NewBuyerOffer(
			kernel.NewUUID(), kernel.NewUUID(), []string{"rice", " "},
			mustCity(t, "Lagos"), mustMoney(t, "10.00"), time.Now())
		require.Error(t, err)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := offer.NewBuyerOffer(
			kernel.NewUUID(), kernel.NewUUID(), []string{"rice"},
			mustCity(t, "Lagos"), kernel.Money{}, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects zero creation time", func(t *testing.T) {
		_, err := offer.NewBuyerOffer(
			kernel.NewUUID(), kernel.NewUUID(), []string{"rice"},
			mustCity(t, "Lagos"), mustMoney(t, "10.00"), time.Time{})
		require.Error(t, err)
	})
}

func TestBuyerOffer_Validate(t *testing.T) {
	var o *offer.BuyerOffer
	require.ErrorIs(t, o.Validate(), offer.ErrBuyerOfferIsNotConstructed)

	empty := &offer.BuyerOffer{}
	require.ErrorIs(t, empty.Validate(), offer.ErrBuyerOfferIsNotConstructed)
}

func TestBuyerOffer_ActivityToggle(t *testing.T) {
	o := newOffer(t, []string{"tomatoes"})

	// Deactivation is idempotent.
	o.Deactivate()
	assert.False(t, o.IsActive())
	o.Deactivate()
	assert.False(t, o.IsActive())

	// So is reactivation.
	o.Reactivate()
	assert.True(t, o.IsActive())
	o.Reactivate()
	assert.True(t, o.IsActive())
}

func TestBuyerOffer_ChangePrice(t *testing.T) {
	o := newOffer(t, []string{"tomatoes"})

	require.NoError(t, o.ChangePrice(mustMoney(t, "150.00")))
	assert.Equal(t, int64(15000), o.Price().MinorUnits())

	require.Error(t, o.ChangePrice(kernel.Money{}))
	assert.Equal(t, int64(15000), o.Price().MinorUnits(), "failed update must not change price")
}

func TestRestoreBuyerOffer(t *testing.T) {
	createdAt := time.Now().Add(-time.Hour)
	o, err := offer.RestoreBuyerOffer(
		kernel.NewUUID(), kernel.NewUUID(), []string{"rice 50kg"},
		mustCity(t, "Lagos"), mustMoney(t, "65000"), false, createdAt)
	require.NoError(t, err)

	assert.False(t, o.IsActive())
	assert.True(t, o.CreatedAt().Equal(createdAt))
}
