package queries_test

import (
	"testing"

	"agrilink/internal/core/application/usecases/queries"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewFindMatchQuery(t *testing.T) {
	t.Run("valid lot id", func(t *testing.T) {
		lotID := kernel.NewUUID()

		query, err := queries.NewFindMatchQuery(lotID)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, lotID, query.LotID())
	})

	t.Run("zero lot id", func(t *testing.T) {
		_, err := queries.NewFindMatchQuery(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.FindMatchQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrFindMatchQueryIsNotConstructed)
	})
}

func Test_NewGetPendingLotsQuery(t *testing.T) {
	t.Run("filters are trimmed and commodity lowercased", func(t *testing.T) {
		query := queries.NewGetPendingLotsQuery("  Onions ", " Kano ")

		assert.NoError(t, query.Validate())
		assert.Equal(t, "onions", query.Commodity())
		assert.Equal(t, "Kano", query.City())
	})

	t.Run("empty filters are allowed", func(t *testing.T) {
		query := queries.NewGetPendingLotsQuery("", "")

		assert.NoError(t, query.Validate())
		assert.Empty(t, query.Commodity())
		assert.Empty(t, query.City())
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetPendingLotsQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetPendingLotsQueryIsNotConstructed)
	})
}

func Test_NewGetActiveOffersQuery(t *testing.T) {
	t.Run("commodity filter is lowercased", func(t *testing.T) {
		query := queries.NewGetActiveOffersQuery("Tomatoes")

		assert.NoError(t, query.Validate())
		assert.Equal(t, "tomatoes", query.Commodity())
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetActiveOffersQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetActiveOffersQueryIsNotConstructed)
	})
}

func Test_NewGetDispatchOrderQuery(t *testing.T) {
	t.Run("valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetDispatchOrderQuery(orderID)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, orderID, query.OrderID())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := queries.NewGetDispatchOrderQuery(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetDispatchOrderQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetDispatchOrderQueryIsNotConstructed)
	})
}

func Test_NewGetMarketFeedQuery(t *testing.T) {
	t.Run("constructed query validates", func(t *testing.T) {
		query := queries.NewGetMarketFeedQuery()

		assert.NoError(t, query.Validate())
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetMarketFeedQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetMarketFeedQueryIsNotConstructed)
	})
}
