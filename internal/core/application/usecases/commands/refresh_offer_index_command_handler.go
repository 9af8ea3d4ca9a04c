package commands

import (
	"context"

	"agrilink/internal/core/ports"
)

// RefreshOfferIndexCommandHandler rebuilds the offer index from the currently
// active offers in the entity store. The store is the source of truth; after a
// rebuild the index contains exactly the active offer set as of the read.
type RefreshOfferIndexCommandHandler struct {
	uowFactory OfferUoWFactory
	index      ports.OfferIndex
}

// NewRefreshOfferIndexCommandHandler creates a handler for index rebuilds.
func NewRefreshOfferIndexCommandHandler(
	uowFactory OfferUoWFactory,
	index ports.OfferIndex,
) RefreshOfferIndexCommandHandler {
	return RefreshOfferIndexCommandHandler{
		uowFactory: uowFactory,
		index:      index,
	}
}

// Handle processes the rebuild command. The read needs no transaction; a
// concurrent offer change missed by the read is picked up by the incremental
// update that follows its commit, or by the next rebuild.
func (h RefreshOfferIndexCommandHandler) Handle(ctx context.Context, command RefreshOfferIndexCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	offers, err := uow.OfferRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	entries := make([]ports.OfferIndexEntry, 0, len(offers))
	for _, o := range offers {
		entries = append(entries, ports.OfferIndexEntry{
			OfferID:     o.ID(),
			Commodities: o.Commodities(),
			City:        o.Destination().Name(),
		})
	}

	return h.index.Rebuild(ctx, entries)
}
