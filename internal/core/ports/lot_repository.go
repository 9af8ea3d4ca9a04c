package ports

import (
	"context"
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"
)

// ErrStatusConflict is returned by compare-and-swap updates whose precondition
// no longer holds: another caller transitioned the record first. The caller
// must re-fetch before deciding anything; retrying with the same stale inputs
// would just lose again.
var ErrStatusConflict = errors.New("status compare-and-swap lost the race")

// LotRepository defines the persistence contract for harvest lot aggregates.
//
// Status changes go through CompareAndSwapStatus rather than a general update:
// the lot status field is the shared resource every concurrent dispatch
// creation races on, and the store is the single arbiter of that race.
type LotRepository interface {
	// Add persists a new harvest lot.
	Add(ctx context.Context, aggregate *lot.HarvestLot) error

	// Get retrieves a harvest lot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*lot.HarvestLot, error)

	// CompareAndSwapStatus atomically transitions the lot's status from the
	// expected current value to the new one. Returns ErrStatusConflict when the
	// stored status differs from the expected value, i.e. when another caller
	// won the race.
	CompareAndSwapStatus(ctx context.Context, id kernel.UUID, from, to lot.Status) error
}
