// Package dispatchrepo provides data transfer objects and mapping functions
// for dispatch order persistence.
package dispatchrepo

import (
	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DispatchOrderDTO represents the database structure for persisting dispatch
// order aggregates. The lot ID carries a unique index: matching exclusivity
// means at most one order may ever reference a lot, and the constraint backs
// up the status compare-and-swap that enforces it.
// All money columns are minor currency units.
type DispatchOrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	LotID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OfferID       uuid.UUID `gorm:"type:uuid;index"`
	DriverID      uuid.UUID `gorm:"type:uuid;index"`
	AgreedPrice   int64
	TransportCost int64
	PlatformFee   int64
	Status        int
}

// TableName specifies the database table name for dispatch order entities.
func (DispatchOrderDTO) TableName() string {
	return "dispatch_orders"
}

func fromDomain(o *dispatch.DispatchOrder) DispatchOrderDTO {
	return DispatchOrderDTO{
		ID:            o.ID().Bytes(),
		LotID:         o.LotID().Bytes(),
		OfferID:       o.OfferID().Bytes(),
		DriverID:      o.DriverID().Bytes(),
		AgreedPrice:   o.AgreedPrice().MinorUnits(),
		TransportCost: o.TransportCost().MinorUnits(),
		PlatformFee:   o.PlatformFee().MinorUnits(),
		Status:        int(o.Status()),
	}
}

func toDomain(dto DispatchOrderDTO) (*dispatch.DispatchOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lotID, err := kernel.UUIDFromBytes(dto.LotID[:])
	if err != nil {
		return nil, err
	}

	offerID, err := kernel.UUIDFromBytes(dto.OfferID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	agreedPrice, err := kernel.NewMoneyFromMinorUnits(dto.AgreedPrice)
	if err != nil {
		return nil, err
	}

	transportCost, err := kernel.NewMoneyFromMinorUnits(dto.TransportCost)
	if err != nil {
		return nil, err
	}

	platformFee, err := kernel.NewMoneyFromMinorUnits(dto.PlatformFee)
	if err != nil {
		return nil, err
	}

	return dispatch.RestoreDispatchOrder(
		id, lotID, offerID, driverID,
		agreedPrice, transportCost, platformFee,
		dispatch.DeliveryStatus(dto.Status),
	)
}
