package offerrepo

import (
	"context"
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/offer"
	"agrilink/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM buyer offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new buyer offer to the database.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.BuyerOffer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing buyer offer to the database. The whole row is
// rewritten with Select("*") so flipping Active to false actually persists
// instead of being skipped as a zero value.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.BuyerOffer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OfferDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a buyer offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.BuyerOffer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany retrieves the offers with the given IDs. IDs that match nothing are
// skipped: the caller's ID list usually comes from the eventually consistent
// offer index and may reference offers deleted since.
func (r *GormOfferRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*offer.BuyerOffer, error) {
	if len(ids) == 0 {
		return []*offer.BuyerOffer{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []OfferDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllActive retrieves every offer whose active flag is set.
func (r *GormOfferRepository) GetAllActive(ctx context.Context) ([]*offer.BuyerOffer, error) {
	var dtos []OfferDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "active").Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OfferDTO) ([]*offer.BuyerOffer, error) {
	offers := make([]*offer.BuyerOffer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}
