package services

import (
	"errors"

	"agrilink/internal/core/domain/model/lot"
	"agrilink/internal/core/domain/model/offer"
)

// ErrOfferNotFound is returned when no active offer accepts the lot's
// commodity. This is not a defect: it is the ordinary "no demand currently
// available" outcome, and the caller handles it by leaving the lot pending
// for a later retry.
var ErrOfferNotFound = errors.New("no matching offer found")

// OfferSelector is the domain service that pairs a harvest lot with the best
// compatible buyer offer.
//
// Ranking, applied in order:
//  1. Higher unit price wins.
//  2. Shorter distance proxy wins (0 same city, 1 same zone, 2 otherwise).
//  3. Earlier offer creation wins.
//  4. Lower offer identifier wins (makes the ordering total, so repeated
//     calls over the same candidate set always pick the same offer).
//
// The selection is advisory: the candidates may come from a slightly stale
// index, so the dispatch creation path re-checks the chosen offer's active
// flag against the entity store at commit time.
type OfferSelector struct{}

// NewOfferSelector creates a new OfferSelector instance.
func NewOfferSelector() OfferSelector {
	return OfferSelector{}
}

// Select returns the top-ranked active offer accepting the lot's commodity.
//
// The lot must be pending: matching a lot that is already claimed (or
// collected) fails with lot.ErrInvalidLotState. Candidates that are inactive
// or do not accept the commodity are skipped, not errors, because the index
// feeding this service is allowed to be stale.
//
// Returns ErrOfferNotFound when no candidate survives filtering.
func (s OfferSelector) Select(l *lot.HarvestLot, offers []*offer.BuyerOffer) (*offer.BuyerOffer, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := l.ValidateMatch(); err != nil {
		return nil, err
	}

	var best *offer.BuyerOffer
	for _, candidate := range offers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsActive() || !candidate.Accepts(l.Commodity()) {
			continue
		}

		if best == nil || s.ranksHigher(l, candidate, best) {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrOfferNotFound
	}

	return best, nil
}

// ranksHigher reports whether candidate outranks current for the given lot.
func (s OfferSelector) ranksHigher(l *lot.HarvestLot, candidate, current *offer.BuyerOffer) bool {
	if cmp := candidate.Price().Compare(current.Price()); cmp != 0 {
		return cmp > 0
	}

	origin := l.Origin()
	candidateDistance := origin.DistanceProxy(candidate.Destination())
	currentDistance := origin.DistanceProxy(current.Destination())
	if candidateDistance != currentDistance {
		return candidateDistance < currentDistance
	}

	if !candidate.CreatedAt().Equal(current.CreatedAt()) {
		return candidate.CreatedAt().Before(current.CreatedAt())
	}

	return candidate.ID().String() < current.ID().String()
}
