package queries

import (
	"context"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingLotsQueryHandler lists lots still waiting for a match, straight
// from the database. Read-only and transaction-free.
type GetPendingLotsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingLotsQueryHandler creates a handler for pending lot listings.
func NewGetPendingLotsQueryHandler(db *gorm.DB) GetPendingLotsQueryHandler {
	return GetPendingLotsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by ID for consistent output.
func (h GetPendingLotsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingLotsQuery,
) ([]GetPendingLotsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			producer_id,
			commodity,
			quantity,
			origin_city
		FROM lots
		WHERE status = ?
	`
	args := []any{lot.Pending}

	if query.Commodity() != "" {
		sql += " AND commodity = ?"
		args = append(args, query.Commodity())
	}
	if query.City() != "" {
		sql += " AND origin_city = ?"
		args = append(args, query.City())
	}
	sql += " ORDER BY id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lots := make([]GetPendingLotsQueryResponse, 0)
	for rows.Next() {
		var resp GetPendingLotsQueryResponse
		var id, producerID uuid.UUID

		err = rows.Scan(
			&id,
			&producerID,
			&resp.Commodity,
			&resp.Quantity,
			&resp.OriginCity,
		)
		if err != nil {
			return nil, err
		}

		lotID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = lotID

		pID, idErr := kernel.UUIDFromBytes(producerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ProducerID = pID

		lots = append(lots, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lots, nil
}
