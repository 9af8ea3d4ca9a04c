package queries

import (
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var (
	ErrGetMarketFeedQueryIsNotConstructed = errors.New(
		"GetMarketFeedQuery must be created via NewGetMarketFeedQuery constructor",
	)
)

// GetMarketFeedQuery retrieves the per-commodity market snapshot: how much
// supply is waiting, how much demand is standing, and the best price on offer.
type GetMarketFeedQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMarketFeedQuery creates a query for the market feed.
func NewGetMarketFeedQuery() GetMarketFeedQuery {
	return GetMarketFeedQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMarketFeedQuery) Validate() error {
	return q.guard.Validate(ErrGetMarketFeedQueryIsNotConstructed)
}

// GetMarketFeedQueryResponse aggregates supply and demand for one commodity.
// TopPrice is zero when no active offer accepts the commodity.
type GetMarketFeedQueryResponse struct {
	Commodity       string
	PendingLots     int
	PendingQuantity int
	ActiveOffers    int
	TopPrice        kernel.Money
}
