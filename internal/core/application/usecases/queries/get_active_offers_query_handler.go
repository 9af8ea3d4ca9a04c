package queries

import (
	"context"

	"agrilink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetActiveOffersQueryHandler lists offers whose active flag is set, straight
// from the database rather than from the index.
type GetActiveOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOffersQueryHandler creates a handler for active offer listings.
func NewGetActiveOffersQueryHandler(db *gorm.DB) GetActiveOffersQueryHandler {
	return GetActiveOffersQueryHandler{db: db}
}

// Handle executes the query. The commodity filter uses array containment on
// the commodities column. Results are sorted by price descending, matching the
// order the matching engine would consider them in.
func (h GetActiveOffersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOffersQuery,
) ([]GetActiveOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			buyer_id,
			commodities,
			destination_city,
			price
		FROM offers
		WHERE active
	`
	args := []any{}

	if query.Commodity() != "" {
		sql += " AND commodities @> ?"
		args = append(args, pq.StringArray{query.Commodity()})
	}
	sql += " ORDER BY price DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]GetActiveOffersQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveOffersQueryResponse
		var id, buyerID uuid.UUID
		var commodities pq.StringArray
		var priceMinorUnits int64

		err = rows.Scan(
			&id,
			&buyerID,
			&commodities,
			&resp.DestinationCity,
			&priceMinorUnits,
		)
		if err != nil {
			return nil, err
		}

		offerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = offerID

		bID, idErr := kernel.UUIDFromBytes(buyerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.BuyerID = bID

		price, priceErr := kernel.NewMoneyFromMinorUnits(priceMinorUnits)
		if priceErr != nil {
			return nil, priceErr
		}
		resp.Price = price
		resp.Commodities = []string(commodities)

		offers = append(offers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
