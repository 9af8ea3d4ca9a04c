package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"agrilink/internal/core/domain/model/account"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/offer"
	"agrilink/internal/core/ports"
)

// ErrBuyerRoleRequired is returned when the offering account exists but does
// not hold the buyer-operator role.
var ErrBuyerRoleRequired = errors.New("offers can only be placed by buyer operator accounts")

// PlaceOfferCommandHandler handles the business logic for placing a standing
// buyer offer. After the offer is committed it is pushed into the offer index;
// index failures are logged and left for the refresh job, since the index is
// advisory and the store remains the source of truth.
type PlaceOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	index      ports.OfferIndex
	logger     *slog.Logger
}

// NewPlaceOfferCommandHandler creates a handler for offer placement.
func NewPlaceOfferCommandHandler(
	uowFactory OfferUoWFactory,
	index ports.OfferIndex,
	logger *slog.Logger,
) PlaceOfferCommandHandler {
	return PlaceOfferCommandHandler{
		uowFactory: uowFactory,
		index:      index,
		logger:     logger.With("component", "place_offer_handler"),
	}
}

// Handle processes the offer placement command.
func (h PlaceOfferCommandHandler) Handle(ctx context.Context, cmd PlaceOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	destination, err := kernel.NewCity(cmd.City())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.AccountRepository().Get(ctx, cmd.BuyerID())
	if err != nil {
		return err
	}
	if buyer.Role() != account.BuyerOperator {
		return ErrBuyerRoleRequired
	}

	o, err := offer.NewBuyerOffer(
		cmd.OfferID(), cmd.BuyerID(), cmd.Commodities(), destination, cmd.Price(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.OfferRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	entry := ports.OfferIndexEntry{
		OfferID:     o.ID(),
		Commodities: o.Commodities(),
		City:        o.Destination().Name(),
	}
	if err = h.index.Put(ctx, entry); err != nil {
		h.logger.WarnContext(ctx, "offer committed but not indexed; refresh job will repair",
			"offer_id", o.ID().String(), "error", err)
	}

	return nil
}
