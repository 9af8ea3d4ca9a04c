package ports

import (
	"context"

	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/kernel"
)

// DispatchRepository defines the persistence contract for dispatch order
// aggregates. The store enforces referential integrity (an order referencing
// unknown lot, offer, or driver identifiers is rejected) and at most one order
// per lot.
type DispatchRepository interface {
	// Add persists a new dispatch order.
	Add(ctx context.Context, aggregate *dispatch.DispatchOrder) error

	// Get retrieves a dispatch order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dispatch.DispatchOrder, error)

	// GetByLotID retrieves the single dispatch order referencing the given
	// harvest lot, if any. Matching exclusivity guarantees there is never more
	// than one.
	GetByLotID(ctx context.Context, lotID kernel.UUID) (*dispatch.DispatchOrder, error)

	// CompareAndSwapStatus atomically transitions the order's delivery status
	// from the expected current value to the new one. Returns ErrStatusConflict
	// when the stored status differs from the expected value.
	CompareAndSwapStatus(ctx context.Context, id kernel.UUID, from, to dispatch.DeliveryStatus) error
}
