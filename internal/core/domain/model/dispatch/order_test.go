package dispatch_test

import (
	"testing"

	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.ParseMoney(s)
	require.NoError(t, err)
	return m
}

func newOrder(t *testing.T) *dispatch.DispatchOrder {
	t.Helper()
	o, err := dispatch.NewDispatchOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		mustMoney(t, "120.00"), mustMoney(t, "15.00"))
	require.NoError(t, err)
	return o
}

func TestNewDispatchOrder(t *testing.T) {
	t.Run("derives platform fee at construction", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, dispatch.InTransit, o.Status())
		assert.Equal(t, int64(12000), o.AgreedPrice().MinorUnits())
		assert.Equal(t, int64(600), o.PlatformFee().MinorUnits())
		assert.Equal(t, "6.00", o.PlatformFee().String())
	})

	t.Run("accepts zero transport cost", func(t *testing.T) {
		o, err := dispatch.NewDispatchOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustMoney(t, "10.00"), kernel.Money{})
		require.NoError(t, err)
		assert.True(t, o.TransportCost().IsZero())
	})

	t.Run("rejects non-positive agreed price", func(t *testing.T) {
		_, err := dispatch.NewDispatchOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.Money{}, kernel.Money{})
		require.Error(t, err)
	})

	t.Run("rejects zero references", func(t *testing.T) {
		var missing kernel.UUID
		_, err := dispatch.NewDispatchOrder(
			kernel.NewUUID(), missing, kernel.NewUUID(), kernel.NewUUID(),
			mustMoney(t, "10.00"), kernel.Money{})
		require.Error(t, err)
	})
}

func TestDispatchOrder_Validate(t *testing.T) {
	var o *dispatch.DispatchOrder
	require.ErrorIs(t, o.Validate(), dispatch.ErrDispatchOrderIsNotConstructed)

	empty := &dispatch.DispatchOrder{}
	require.ErrorIs(t, empty.Validate(), dispatch.ErrDispatchOrderIsNotConstructed)
}

func TestDispatchOrder_Delivery(t *testing.T) {
	t.Run("in transit can be delivered", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, dispatch.Delivered, o.Status())
	})

	t.Run("in transit can fail", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.MarkFailed())
		assert.Equal(t, dispatch.Failed, o.Status())
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.MarkDelivered())

		require.ErrorIs(t, o.MarkDelivered(), dispatch.ErrInvalidDeliveryState)
		require.ErrorIs(t, o.MarkFailed(), dispatch.ErrInvalidDeliveryState)
		assert.Equal(t, dispatch.Delivered, o.Status())
	})

	t.Run("failed order cannot be delivered afterwards", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.MarkFailed())

		require.ErrorIs(t, o.MarkDelivered(), dispatch.ErrInvalidDeliveryState)
		assert.Equal(t, dispatch.Failed, o.Status())
	})
}

func TestDispatchOrder_PlatformFeeIsImmutable(t *testing.T) {
	// The aggregate exposes no setter for agreed price or fee; the only
	// observable guarantee left to check is that the fee survives lifecycle
	// transitions untouched.
	o := newOrder(t)
	feeBefore := o.PlatformFee()

	require.NoError(t, o.MarkDelivered())
	assert.True(t, feeBefore.IsEqual(o.PlatformFee()))
}

func TestRestoreDispatchOrder(t *testing.T) {
	t.Run("restores delivered order", func(t *testing.T) {
		price := mustMoney(t, "120.00")
		o, err := dispatch.RestoreDispatchOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			price, mustMoney(t, "15.00"), price.PlatformFee(), dispatch.Delivered)
		require.NoError(t, err)
		assert.Equal(t, dispatch.Delivered, o.Status())
	})

	t.Run("rejects tampered platform fee", func(t *testing.T) {
		_, err := dispatch.RestoreDispatchOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			mustMoney(t, "120.00"), kernel.Money{}, mustMoney(t, "99.00"), dispatch.InTransit)
		require.ErrorIs(t, err, dispatch.ErrPlatformFeeMismatch)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		price := mustMoney(t, "120.00")
		_, err := dispatch.RestoreDispatchOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			price, kernel.Money{}, price.PlatformFee(), dispatch.UnknownDeliveryStatus)
		require.Error(t, err)
	})
}

func TestDeliveryStatus(t *testing.T) {
	t.Run("string round trip", func(t *testing.T) {
		for _, s := range []dispatch.DeliveryStatus{dispatch.InTransit, dispatch.Delivered, dispatch.Failed} {
			parsed, err := dispatch.DeliveryStatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, dispatch.InTransit.IsTerminal())
		assert.True(t, dispatch.Delivered.IsTerminal())
		assert.True(t, dispatch.Failed.IsTerminal())
	})

	t.Run("invalid value", func(t *testing.T) {
		require.Error(t, dispatch.DeliveryStatus(7).Validate())
		_, err := dispatch.DeliveryStatusFromString("lost")
		require.Error(t, err)
	})
}
