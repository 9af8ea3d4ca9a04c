package lotrepo

import (
	"context"
	"errors"
	"fmt"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"
	"agrilink/internal/core/ports"
	"agrilink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLotRepository implements LotRepository using GORM.
type GormLotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLotRepository creates a new GORM harvest lot repository.
func NewGormLotRepository(db *gorm.DB, tracker aggregateTracker) *GormLotRepository {
	return &GormLotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new harvest lot to the database.
func (r *GormLotRepository) Add(ctx context.Context, aggregate *lot.HarvestLot) error {
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

// Get retrieves a harvest lot by ID.
func (r *GormLotRepository) Get(ctx context.Context, id kernel.UUID) (*lot.HarvestLot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("harvest lot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CompareAndSwapStatus transitions the lot's status only if it still holds the
// expected value. The conditional UPDATE makes the database the arbiter of
// concurrent claims: of N racing dispatches, exactly one sees RowsAffected=1.
func (r *GormLotRepository) CompareAndSwapStatus(
	ctx context.Context, id kernel.UUID, from, to lot.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&LotDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(from)).
		Update("status", int(to))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: lot %s is not %s", ports.ErrStatusConflict, id, from)
	}

	return nil
}
