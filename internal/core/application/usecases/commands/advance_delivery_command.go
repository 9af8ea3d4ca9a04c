package commands

import (
	"errors"

	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var (
	ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
		"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
	)
)

// AdvanceDeliveryCommand represents a request to move a dispatch order out of
// transit, either to delivered or to failed. Both outcomes are terminal.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	outcome dispatch.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command to conclude a delivery.
// The outcome must be a terminal status; requesting a transition back to
// in-transit is rejected up front.
func NewAdvanceDeliveryCommand(
	orderID kernel.UUID,
	outcome dispatch.DeliveryStatus,
) (AdvanceDeliveryCommand, error) {
	cmd := AdvanceDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOutcome(outcome),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the dispatch order to conclude.
func (c AdvanceDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Outcome returns the requested terminal status.
func (c AdvanceDeliveryCommand) Outcome() dispatch.DeliveryStatus {
	return c.outcome
}

func (c *AdvanceDeliveryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AdvanceDeliveryCommand) setOutcome(outcome dispatch.DeliveryStatus) error {
	if err := outcome.Validate(); err != nil {
		return err
	}
	if !outcome.IsTerminal() {
		return dispatch.ErrInvalidDeliveryState
	}
	c.outcome = outcome
	return nil
}
