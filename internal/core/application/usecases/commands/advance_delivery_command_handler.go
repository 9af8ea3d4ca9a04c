package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/lot"
	"agrilink/internal/core/ports"
)

// ErrInconsistentState is returned when a delivered order references a lot
// that is not in matched status. Matched lots are invisible to the matching
// engine and have no other writer, so this cannot happen unless an invariant
// was broken elsewhere. The handler reports it and leaves the data alone.
var ErrInconsistentState = errors.New("delivered order references a lot that is not matched")

// AdvanceDeliveryCommandHandler concludes a dispatch order.
//
// A delivered outcome also moves the claimed lot from matched to collected,
// in the same transaction. A failed outcome touches only the order; the lot
// stays matched and releasing it is a separate administrative decision.
type AdvanceDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
	logger     *slog.Logger
}

// NewAdvanceDeliveryCommandHandler creates a handler for delivery conclusion.
func NewAdvanceDeliveryCommandHandler(
	uowFactory DispatchUoWFactory, logger *slog.Logger,
) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the delivery conclusion command.
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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

	order, err := uow.DispatchRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Outcome() {
	case dispatch.Delivered:
		err = order.MarkDelivered()
	case dispatch.Failed:
		err = order.MarkFailed()
	default:
		err = dispatch.ErrInvalidDeliveryState
	}
	if err != nil {
		return err
	}

	err = uow.DispatchRepository().CompareAndSwapStatus(ctx, order.ID(), dispatch.InTransit, cmd.Outcome())
	if err != nil {
		if errors.Is(err, ports.ErrStatusConflict) {
			return fmt.Errorf("%w: order %s is no longer in transit", dispatch.ErrInvalidDeliveryState, order.ID())
		}
		return err
	}

	if cmd.Outcome() == dispatch.Delivered {
		err = uow.LotRepository().CompareAndSwapStatus(ctx, order.LotID(), lot.Matched, lot.Collected)
		if err != nil {
			if errors.Is(err, ports.ErrStatusConflict) {
				h.logger.ErrorContext(ctx, "lot status invariant violated on delivery",
					"orderID", order.ID().String(),
					"lotID", order.LotID().String(),
				)
				return ErrInconsistentState
			}
			return err
		}
	}

	return uow.Commit(ctx)
}
