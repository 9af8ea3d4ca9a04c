// Package offerrepo provides data transfer objects and mapping functions for
// buyer offer persistence.
package offerrepo

import (
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OfferDTO represents the database structure for persisting buyer offer
// aggregates. The accepted commodities live in a text array column so the
// read side can filter with array containment instead of a join table.
// Price is stored in minor currency units.
type OfferDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BuyerID         uuid.UUID      `gorm:"type:uuid;index"`
	Commodities     pq.StringArray `gorm:"type:text[]"`
	DestinationCity string
	Price           int64
	Active          bool `gorm:"index"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for buyer offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(o *offer.BuyerOffer) OfferDTO {
	return OfferDTO{
		ID:              o.ID().Bytes(),
		BuyerID:         o.BuyerID().Bytes(),
		Commodities:     pq.StringArray(o.Commodities()),
		DestinationCity: o.Destination().Name(),
		Price:           o.Price().MinorUnits(),
		Active:          o.IsActive(),
		CreatedAt:       o.CreatedAt(),
	}
}

func toDomain(dto OfferDTO) (*offer.BuyerOffer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewCity(dto.DestinationCity)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromMinorUnits(dto.Price)
	if err != nil {
		return nil, err
	}

	return offer.RestoreBuyerOffer(
		id, buyerID, []string(dto.Commodities), destination, price, dto.Active, dto.CreatedAt)
}
