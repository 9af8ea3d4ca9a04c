// Package inmem provides in-process adapter implementations, used when the
// service runs without external infrastructure (local development, tests,
// single-node deployments).
package inmem

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/ports"
)

// indexSnapshot is an immutable view of the index. Lookups read the current
// snapshot through an atomic pointer, so they never take a lock and never
// block writers.
type indexSnapshot struct {
	entries     map[kernel.UUID]ports.OfferIndexEntry
	byCommodity map[string][]kernel.UUID
	byCity      map[string][]kernel.UUID
}

// OfferIndex is an in-memory ports.OfferIndex. Writers rebuild the derived
// lookup maps under a mutex and publish the result atomically; concurrent
// readers keep serving the previous snapshot until the swap.
type OfferIndex struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[indexSnapshot]
}

// NewOfferIndex creates an empty in-memory offer index.
func NewOfferIndex() *OfferIndex {
	idx := &OfferIndex{}
	idx.snapshot.Store(buildSnapshot(nil))
	return idx
}

// Put indexes an offer or refreshes its entry.
func (idx *OfferIndex) Put(_ context.Context, entry ports.OfferIndexEntry) error {
	if err := entry.OfferID.Validate(); err != nil {
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	current := idx.snapshot.Load()
	entries := make([]ports.OfferIndexEntry, 0, len(current.entries)+1)
	for id, e := range current.entries {
		if id != entry.OfferID {
			entries = append(entries, e)
		}
	}
	entries = append(entries, entry)

	idx.snapshot.Store(buildSnapshot(entries))
	return nil
}

// Remove drops an offer from the index. Removing an absent offer is a no-op.
func (idx *OfferIndex) Remove(_ context.Context, offerID kernel.UUID) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	current := idx.snapshot.Load()
	if _, ok := current.entries[offerID]; !ok {
		return nil
	}

	entries := make([]ports.OfferIndexEntry, 0, len(current.entries)-1)
	for id, e := range current.entries {
		if id != offerID {
			entries = append(entries, e)
		}
	}

	idx.snapshot.Store(buildSnapshot(entries))
	return nil
}

// OffersByCommodity returns the identifiers of indexed offers accepting the
// given commodity. Matching is case-insensitive.
func (idx *OfferIndex) OffersByCommodity(_ context.Context, commodity string) ([]kernel.UUID, error) {
	snapshot := idx.snapshot.Load()
	return copyIDs(snapshot.byCommodity[strings.ToLower(commodity)]), nil
}

// OffersByCity returns the identifiers of indexed offers destined for the
// given city. Matching is case-insensitive.
func (idx *OfferIndex) OffersByCity(_ context.Context, city string) ([]kernel.UUID, error) {
	snapshot := idx.snapshot.Load()
	return copyIDs(snapshot.byCity[strings.ToLower(city)]), nil
}

// Rebuild atomically replaces the whole index with the given entries.
func (idx *OfferIndex) Rebuild(_ context.Context, entries []ports.OfferIndexEntry) error {
	for _, entry := range entries {
		if err := entry.OfferID.Validate(); err != nil {
			return err
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.snapshot.Store(buildSnapshot(entries))
	return nil
}

func buildSnapshot(entries []ports.OfferIndexEntry) *indexSnapshot {
	snapshot := &indexSnapshot{
		entries:     make(map[kernel.UUID]ports.OfferIndexEntry, len(entries)),
		byCommodity: make(map[string][]kernel.UUID),
		byCity:      make(map[string][]kernel.UUID),
	}

	for _, entry := range entries {
		// Last write wins for duplicate identifiers within one rebuild.
		snapshot.entries[entry.OfferID] = entry
	}

	for id, entry := range snapshot.entries {
		for _, commodity := range entry.Commodities {
			key := strings.ToLower(commodity)
			snapshot.byCommodity[key] = append(snapshot.byCommodity[key], id)
		}
		if entry.City != "" {
			key := strings.ToLower(entry.City)
			snapshot.byCity[key] = append(snapshot.byCity[key], id)
		}
	}

	return snapshot
}

func copyIDs(ids []kernel.UUID) []kernel.UUID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]kernel.UUID, len(ids))
	copy(out, ids)
	return out
}
