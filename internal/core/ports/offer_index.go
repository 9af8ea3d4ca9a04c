package ports

import (
	"context"

	"agrilink/internal/core/domain/model/kernel"
)

// OfferIndexEntry is the compact projection of a buyer offer kept in the offer
// index: enough to answer candidate lookups, nothing more. Full offers are
// always re-read from the entity store before they influence a commit.
type OfferIndexEntry struct {
	OfferID     kernel.UUID
	Commodities []string
	City        string
}

// OfferIndex answers "which active offers accept commodity C" (and "which are
// placed in city X") in sub-linear time as the offer set grows.
//
// The index sits outside the transactional boundary of dispatch creation: it
// is updated after commits and periodically rebuilt from the entity store, so
// a reader may briefly see an offer that has just been deactivated. The
// dispatch path re-validates the active flag against the store at commit
// time. Implementations must never let reads block writers.
type OfferIndex interface {
	// Put indexes an offer or refreshes its entry. Used on offer creation and
	// reactivation.
	Put(ctx context.Context, entry OfferIndexEntry) error

	// Remove drops an offer from the index. Used on deactivation; removing an
	// absent offer is a no-op.
	Remove(ctx context.Context, offerID kernel.UUID) error

	// OffersByCommodity returns the identifiers of indexed offers accepting
	// the given commodity.
	OffersByCommodity(ctx context.Context, commodity string) ([]kernel.UUID, error)

	// OffersByCity returns the identifiers of indexed offers destined for the
	// given city.
	OffersByCity(ctx context.Context, city string) ([]kernel.UUID, error)

	// Rebuild atomically replaces the whole index with the given entries.
	// The refresh job calls this to bound the index's staleness.
	Rebuild(ctx context.Context, entries []OfferIndexEntry) error
}
