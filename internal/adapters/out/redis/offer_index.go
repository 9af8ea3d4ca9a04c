// Package redis provides Redis-backed adapter implementations for deployments
// where the offer index must be shared across service instances.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	registryKey        = "agrilink:offers:ids"
	entryKeyPrefix     = "agrilink:offers:entry:"
	commodityKeyPrefix = "agrilink:offers:commodity:"
	cityKeyPrefix      = "agrilink:offers:city:"
)

// indexedOffer is the stored form of an index entry. Keeping the commodity
// and city lists alongside the identifier lets Remove and Put clean up the
// reverse sets without scanning the keyspace.
type indexedOffer struct {
	OfferID     string   `json:"offer_id"`
	Commodities []string `json:"commodities"`
	City        string   `json:"city"`
}

// OfferIndex is a Redis-backed ports.OfferIndex. Each offer has a JSON entry
// keyed by its identifier plus memberships in per-commodity and per-city sets;
// lookups are single SMEMBERS calls.
type OfferIndex struct {
	client redis.UniversalClient
}

// NewOfferIndex creates a Redis-backed offer index on the given client.
func NewOfferIndex(client redis.UniversalClient) *OfferIndex {
	return &OfferIndex{client: client}
}

// Put indexes an offer or refreshes its entry. A refresh first detaches the
// offer from the sets its previous entry named, so re-scoped offers do not
// linger under commodities they no longer accept.
func (idx *OfferIndex) Put(ctx context.Context, entry ports.OfferIndexEntry) error {
	if err := entry.OfferID.Validate(); err != nil {
		return err
	}

	previous, err := idx.loadEntry(ctx, entry.OfferID.String())
	if err != nil {
		return err
	}

	stored := indexedOffer{
		OfferID:     entry.OfferID.String(),
		Commodities: normalize(entry.Commodities),
		City:        strings.ToLower(strings.TrimSpace(entry.City)),
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("marshal offer index entry: %w", err)
	}

	pipe := idx.client.TxPipeline()
	if previous != nil {
		detach(ctx, pipe, *previous)
	}
	pipe.Set(ctx, entryKeyPrefix+stored.OfferID, payload, 0)
	pipe.SAdd(ctx, registryKey, stored.OfferID)
	attach(ctx, pipe, stored)

	_, err = pipe.Exec(ctx)
	return err
}

// Remove drops an offer from the index. Removing an absent offer is a no-op.
func (idx *OfferIndex) Remove(ctx context.Context, offerID kernel.UUID) error {
	stored, err := idx.loadEntry(ctx, offerID.String())
	if err != nil {
		return err
	}
	if stored == nil {
		return nil
	}

	pipe := idx.client.TxPipeline()
	detach(ctx, pipe, *stored)
	pipe.Del(ctx, entryKeyPrefix+stored.OfferID)
	pipe.SRem(ctx, registryKey, stored.OfferID)

	_, err = pipe.Exec(ctx)
	return err
}

// OffersByCommodity returns the identifiers of indexed offers accepting the
// given commodity.
func (idx *OfferIndex) OffersByCommodity(ctx context.Context, commodity string) ([]kernel.UUID, error) {
	return idx.members(ctx, commodityKeyPrefix+strings.ToLower(commodity))
}

// OffersByCity returns the identifiers of indexed offers destined for the
// given city.
func (idx *OfferIndex) OffersByCity(ctx context.Context, city string) ([]kernel.UUID, error) {
	return idx.members(ctx, cityKeyPrefix+strings.ToLower(city))
}

// Rebuild replaces the whole index with the given entries in one transaction:
// every key derived from the current registry is deleted and the new entries
// written before any reader sees the swap.
func (idx *OfferIndex) Rebuild(ctx context.Context, entries []ports.OfferIndexEntry) error {
	stored := make([]indexedOffer, 0, len(entries))
	payloads := make([][]byte, 0, len(entries))
	for _, entry := range entries {
		if err := entry.OfferID.Validate(); err != nil {
			return err
		}
		offer := indexedOffer{
			OfferID:     entry.OfferID.String(),
			Commodities: normalize(entry.Commodities),
			City:        strings.ToLower(strings.TrimSpace(entry.City)),
		}
		payload, err := json.Marshal(offer)
		if err != nil {
			return fmt.Errorf("marshal offer index entry: %w", err)
		}
		stored = append(stored, offer)
		payloads = append(payloads, payload)
	}

	currentIDs, err := idx.client.SMembers(ctx, registryKey).Result()
	if err != nil {
		return err
	}

	current := make([]indexedOffer, 0, len(currentIDs))
	for _, id := range currentIDs {
		offer, loadErr := idx.loadEntry(ctx, id)
		if loadErr != nil {
			return loadErr
		}
		if offer != nil {
			current = append(current, *offer)
		}
	}

	pipe := idx.client.TxPipeline()
	for _, offer := range current {
		detach(ctx, pipe, offer)
		pipe.Del(ctx, entryKeyPrefix+offer.OfferID)
	}
	pipe.Del(ctx, registryKey)

	for i, offer := range stored {
		pipe.Set(ctx, entryKeyPrefix+offer.OfferID, payloads[i], 0)
		pipe.SAdd(ctx, registryKey, offer.OfferID)
		attach(ctx, pipe, offer)
	}

	_, err = pipe.Exec(ctx)
	return err
}

func (idx *OfferIndex) loadEntry(ctx context.Context, offerID string) (*indexedOffer, error) {
	payload, err := idx.client.Get(ctx, entryKeyPrefix+offerID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var stored indexedOffer
	if err = json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("unmarshal offer index entry %s: %w", offerID, err)
	}
	return &stored, nil
}

func (idx *OfferIndex) members(ctx context.Context, key string) ([]kernel.UUID, error) {
	raw, err := idx.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, parseErr := kernel.UUIDFromString(s)
		if parseErr != nil {
			return nil, parseErr
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func attach(ctx context.Context, pipe redis.Pipeliner, offer indexedOffer) {
	for _, commodity := range offer.Commodities {
		pipe.SAdd(ctx, commodityKeyPrefix+commodity, offer.OfferID)
	}
	if offer.City != "" {
		pipe.SAdd(ctx, cityKeyPrefix+offer.City, offer.OfferID)
	}
}

func detach(ctx context.Context, pipe redis.Pipeliner, offer indexedOffer) {
	for _, commodity := range offer.Commodities {
		pipe.SRem(ctx, commodityKeyPrefix+commodity, offer.OfferID)
	}
	if offer.City != "" {
		pipe.SRem(ctx, cityKeyPrefix+offer.City, offer.OfferID)
	}
}

func normalize(commodities []string) []string {
	out := make([]string, 0, len(commodities))
	for _, c := range commodities {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
