package queries

import (
	"context"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"

	"gorm.io/gorm"
)

// GetMarketFeedQueryHandler builds the per-commodity market snapshot. Supply
// comes from pending lots, demand from active offers; a commodity appears in
// the feed if either side mentions it.
type GetMarketFeedQueryHandler struct {
	db *gorm.DB
}

// NewGetMarketFeedQueryHandler creates a handler for the market feed.
func NewGetMarketFeedQueryHandler(db *gorm.DB) GetMarketFeedQueryHandler {
	return GetMarketFeedQueryHandler{db: db}
}

// Handle executes the query. Offer commodity lists are unnested so an offer
// accepting three commodities counts as demand for each of the three.
func (h GetMarketFeedQueryHandler) Handle(
	ctx context.Context,
	query GetMarketFeedQuery,
) ([]GetMarketFeedQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		WITH supply AS (
			SELECT commodity, COUNT(*) AS lots, SUM(quantity) AS quantity
			FROM lots
			WHERE status = ?
			GROUP BY commodity
		), demand AS (
			SELECT unnest(commodities) AS commodity, COUNT(*) AS offers, MAX(price) AS top_price
			FROM offers
			WHERE active
			GROUP BY 1
		)
		SELECT
			COALESCE(supply.commodity, demand.commodity) AS commodity,
			COALESCE(supply.lots, 0),
			COALESCE(supply.quantity, 0),
			COALESCE(demand.offers, 0),
			COALESCE(demand.top_price, 0)
		FROM supply
		FULL OUTER JOIN demand ON supply.commodity = demand.commodity
		ORDER BY 1
	`, lot.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feed := make([]GetMarketFeedQueryResponse, 0)
	for rows.Next() {
		var resp GetMarketFeedQueryResponse
		var topPrice int64

		err = rows.Scan(
			&resp.Commodity,
			&resp.PendingLots,
			&resp.PendingQuantity,
			&resp.ActiveOffers,
			&topPrice,
		)
		if err != nil {
			return nil, err
		}

		price, priceErr := kernel.NewMoneyFromMinorUnits(topPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		resp.TopPrice = price

		feed = append(feed, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return feed, nil
}
