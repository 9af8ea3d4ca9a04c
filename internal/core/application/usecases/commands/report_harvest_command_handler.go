package commands

import (
	"context"
	"errors"

	"agrilink/internal/core/domain/model/account"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"
)

// ErrProducerRoleRequired is returned when the reporting account exists but
// does not hold the producer role.
var ErrProducerRoleRequired = errors.New("harvest lots can only be reported by producer accounts")

// ReportHarvestCommandHandler handles the business logic for recording a
// harvest lot. Verifies the reporting account is a producer and creates the
// lot in pending status, ready for matching.
type ReportHarvestCommandHandler struct {
	uowFactory LotUoWFactory
}

// NewReportHarvestCommandHandler creates a handler for harvest reporting.
func NewReportHarvestCommandHandler(uowFactory LotUoWFactory) ReportHarvestCommandHandler {
	return ReportHarvestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the harvest report command.
// The new lot starts in pending status; matching is a separate step.
func (h ReportHarvestCommandHandler) Handle(ctx context.Context, cmd ReportHarvestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	origin, err := kernel.NewCity(cmd.City())
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

	producer, err := uow.AccountRepository().Get(ctx, cmd.ProducerID())
	if err != nil {
		return err
	}
	if producer.Role() != account.Producer {
		return ErrProducerRoleRequired
	}

	l, err := lot.NewHarvestLot(cmd.LotID(), cmd.ProducerID(), cmd.Commodity(), cmd.Quantity(), origin)
	if err != nil {
		return err
	}

	if err = uow.LotRepository().Add(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
