// Package lotrepo provides data transfer objects and mapping functions for
// harvest lot persistence.
package lotrepo

import (
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"

	"github.com/google/uuid"
)

// LotDTO represents the database structure for persisting harvest lot
// aggregates. Status and commodity are indexed: the matching engine filters
// on both.
type LotDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProducerID uuid.UUID `gorm:"type:uuid;index"`
	Commodity  string    `gorm:"index"`
	Quantity   int
	OriginCity string
	Status     int `gorm:"index"`
}

// TableName specifies the database table name for harvest lot entities.
func (LotDTO) TableName() string {
	return "lots"
}

func fromDomain(l *lot.HarvestLot) LotDTO {
	return LotDTO{
		ID:         l.ID().Bytes(),
		ProducerID: l.ProducerID().Bytes(),
		Commodity:  l.Commodity(),
		Quantity:   l.Quantity(),
		OriginCity: l.Origin().Name(),
		Status:     int(l.Status()),
	}
}

func toDomain(dto LotDTO) (*lot.HarvestLot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	producerID, err := kernel.UUIDFromBytes(dto.ProducerID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewCity(dto.OriginCity)
	if err != nil {
		return nil, err
	}

	return lot.RestoreHarvestLot(id, producerID, dto.Commodity, dto.Quantity, origin, lot.Status(dto.Status))
}
