package ports

import (
	"context"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for buyer offer aggregates.
// The repository is the source of truth for the active flag; the offer index
// is only an advisory projection of it.
type OfferRepository interface {
	// Add persists a new buyer offer.
	Add(ctx context.Context, aggregate *offer.BuyerOffer) error

	// Update persists price or activity changes to an existing offer.
	Update(ctx context.Context, aggregate *offer.BuyerOffer) error

	// Get retrieves a buyer offer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*offer.BuyerOffer, error)

	// GetMany retrieves the offers with the given identifiers. Identifiers that
	// match nothing are skipped rather than treated as errors, because callers
	// feed this method from the eventually consistent index.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*offer.BuyerOffer, error)

	// GetAllActive retrieves every offer whose active flag is set. Used to
	// rebuild the offer index and to serve the active-offer listing.
	GetAllActive(ctx context.Context) ([]*offer.BuyerOffer, error)
}
