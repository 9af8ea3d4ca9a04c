package queries

import (
	"context"
	"database/sql"
	"errors"

	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDispatchOrderQueryHandler serves single dispatch order lookups from the
// database.
type GetDispatchOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDispatchOrderQueryHandler creates a handler for dispatch order lookups.
func NewGetDispatchOrderQueryHandler(db *gorm.DB) GetDispatchOrderQueryHandler {
	return GetDispatchOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// exists with the given identifier.
func (h GetDispatchOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchOrderQuery,
) (GetDispatchOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDispatchOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			lot_id,
			offer_id,
			driver_id,
			agreed_price,
			transport_cost,
			platform_fee,
			status
		FROM dispatch_orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id, lotID, offerID, driverID uuid.UUID
	var agreedPrice, transportCost, platformFee int64
	var status int

	err := row.Scan(
		&id,
		&lotID,
		&offerID,
		&driverID,
		&agreedPrice,
		&transportCost,
		&platformFee,
		&status,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return GetDispatchOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"dispatch order", query.OrderID().String())
		}
		return GetDispatchOrderQueryResponse{}, err
	}

	resp := GetDispatchOrderQueryResponse{
		Status: dispatch.DeliveryStatus(status).String(),
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDispatchOrderQueryResponse{}, err
	}
	if resp.LotID, err = kernel.UUIDFromBytes(lotID[:]); err != nil {
		return GetDispatchOrderQueryResponse{}, err
	}
	if resp.OfferID, err = kernel.UUIDFromBytes(offerID[:]); err != nil {
		return GetDispatchOrderQueryResponse{}, err
	}
	if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
		return GetDispatchOrderQueryResponse{}, err
	}

	if resp.AgreedPrice, err = kernel.NewMoneyFromMinorUnits(agreedPrice); err != nil {
		return GetDispatchOrderQueryResponse{}, err
	}
	if resp.TransportCost, err = kernel.NewMoneyFromMinorUnits(transportCost); err != nil {
		return GetDispatchOrderQueryResponse{}, err
	}
	if resp.PlatformFee, err = kernel.NewMoneyFromMinorUnits(platformFee); err != nil {
		return GetDispatchOrderQueryResponse{}, err
	}

	return resp, nil
}
