package dispatchrepo

import (
	"context"
	"errors"
	"fmt"

	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/ports"
	"agrilink/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDispatchRepository implements DispatchRepository using GORM.
type GormDispatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDispatchRepository creates a new GORM dispatch order repository.
func NewGormDispatchRepository(db *gorm.DB, tracker aggregateTracker) *GormDispatchRepository {
	return &GormDispatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dispatch order to the database. The unique index on lot_id
// rejects a second order for the same lot even if the caller somehow got past
// the lot status swap.
func (r *GormDispatchRepository) Add(ctx context.Context, aggregate *dispatch.DispatchOrder) error {
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

// Get retrieves a dispatch order by ID.
func (r *GormDispatchRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.DispatchOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DispatchOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispatch order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLotID retrieves the dispatch order referencing the given harvest lot.
func (r *GormDispatchRepository) GetByLotID(
	ctx context.Context, lotID kernel.UUID,
) (*dispatch.DispatchOrder, error) {
	if err := lotID.Validate(); err != nil {
		return nil, err
	}

	var dto DispatchOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "lot_id = ?", lotID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispatch order for lot", lotID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CompareAndSwapStatus transitions the order's delivery status only if it
// still holds the expected value.
func (r *GormDispatchRepository) CompareAndSwapStatus(
	ctx context.Context, id kernel.UUID, from, to dispatch.DeliveryStatus,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DispatchOrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(from)).
		Update("status", int(to))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: dispatch order %s is not %s", ports.ErrStatusConflict, id, from)
	}

	return nil
}
