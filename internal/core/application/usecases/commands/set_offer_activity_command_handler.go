package commands

import (
	"context"
	"log/slog"

	"agrilink/internal/core/ports"
)

// SetOfferActivityCommandHandler handles offer activation and deactivation.
// The store is updated first; the index follows best-effort, with the refresh
// job as the backstop. A deactivated offer can therefore briefly remain
// visible to matching; the dispatch path's commit-time revalidation is what
// keeps that harmless.
type SetOfferActivityCommandHandler struct {
	uowFactory OfferUoWFactory
	index      ports.OfferIndex
	logger     *slog.Logger
}

// NewSetOfferActivityCommandHandler creates a handler for offer activity toggling.
func NewSetOfferActivityCommandHandler(
	uowFactory OfferUoWFactory,
	index ports.OfferIndex,
	logger *slog.Logger,
) SetOfferActivityCommandHandler {
	return SetOfferActivityCommandHandler{
		uowFactory: uowFactory,
		index:      index,
		logger:     logger.With("component", "set_offer_activity_handler"),
	}
}

// Handle processes the activity toggle command. Idempotent: setting the flag
// to its current value succeeds without doing anything.
func (h SetOfferActivityCommandHandler) Handle(ctx context.Context, cmd SetOfferActivityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offerRepo := uow.OfferRepository()

	o, err := offerRepo.Get(ctx, cmd.OfferID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		o.Reactivate()
	} else {
		o.Deactivate()
	}

	if err = offerRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	var indexErr error
	if cmd.Active() {
		indexErr = h.index.Put(ctx, ports.OfferIndexEntry{
			OfferID:     o.ID(),
			Commodities: o.Commodities(),
			City:        o.Destination().Name(),
		})
	} else {
		indexErr = h.index.Remove(ctx, o.ID())
	}
	if indexErr != nil {
		h.logger.WarnContext(ctx, "offer activity committed but index not updated; refresh job will repair",
			"offer_id", o.ID().String(), "active", cmd.Active(), "error", indexErr)
	}

	return nil
}
