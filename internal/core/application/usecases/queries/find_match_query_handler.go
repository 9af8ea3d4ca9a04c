package queries

import (
	"context"
	"log/slog"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"
	"agrilink/internal/core/domain/model/offer"
	"agrilink/internal/core/domain/services"
	"agrilink/internal/core/ports"
)

// LotReader is the read-side slice of the lot repository the matching engine
// needs.
type LotReader interface {
	Get(ctx context.Context, id kernel.UUID) (*lot.HarvestLot, error)
}

// OfferReader is the read-side slice of the offer repository the matching
// engine needs.
type OfferReader interface {
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*offer.BuyerOffer, error)
	GetAllActive(ctx context.Context) ([]*offer.BuyerOffer, error)
}

// FindMatchQueryHandler runs the matching engine for one lot.
//
// Candidates come from the offer index, then the full offers are re-read from
// the entity store before ranking, so index staleness can only cost a wasted
// candidate. If the index itself is unavailable the handler falls back to
// scanning all active offers; slower, but the answer stays correct.
type FindMatchQueryHandler struct {
	lots     LotReader
	offers   OfferReader
	index    ports.OfferIndex
	selector services.OfferSelector
	logger   *slog.Logger
}

// NewFindMatchQueryHandler creates a handler for match finding.
func NewFindMatchQueryHandler(
	lots LotReader,
	offers OfferReader,
	index ports.OfferIndex,
	logger *slog.Logger,
) FindMatchQueryHandler {
	return FindMatchQueryHandler{
		lots:     lots,
		offers:   offers,
		index:    index,
		selector: services.NewOfferSelector(),
		logger:   logger.With("component", "find_match_handler"),
	}
}

// Handle executes the query and returns the best-ranked offer for the lot.
// Returns services.ErrOfferNotFound when no active offer accepts the lot's
// commodity, and lot.ErrInvalidLotState when the lot is not pending.
func (h FindMatchQueryHandler) Handle(ctx context.Context, query FindMatchQuery) (FindMatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindMatchQueryResponse{}, err
	}

	l, err := h.lots.Get(ctx, query.LotID())
	if err != nil {
		return FindMatchQueryResponse{}, err
	}

	candidates, err := h.candidates(ctx, l)
	if err != nil {
		return FindMatchQueryResponse{}, err
	}

	best, err := h.selector.Select(l, candidates)
	if err != nil {
		return FindMatchQueryResponse{}, err
	}

	return FindMatchQueryResponse{
		OfferID:       best.ID(),
		BuyerID:       best.BuyerID(),
		Price:         best.Price(),
		Destination:   best.Destination().Name(),
		DistanceProxy: l.Origin().DistanceProxy(best.Destination()),
	}, nil
}

func (h FindMatchQueryHandler) candidates(ctx context.Context, l *lot.HarvestLot) ([]*offer.BuyerOffer, error) {
	ids, err := h.index.OffersByCommodity(ctx, l.Commodity())
	if err != nil {
		h.logger.WarnContext(ctx, "offer index unavailable, scanning all active offers",
			"lot_id", l.ID().String(), "error", err)
		return h.offers.GetAllActive(ctx)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	return h.offers.GetMany(ctx, ids)
}
