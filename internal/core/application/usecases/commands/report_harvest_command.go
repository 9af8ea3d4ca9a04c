package commands

import (
	"errors"
	"fmt"
	"strings"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
	"agrilink/internal/pkg/guard"
)

var (
	ErrReportHarvestCommandIsNotConstructed = errors.New(
		"ReportHarvestCommand must be created via NewReportHarvestCommand constructor",
	)
)

// ReportHarvestCommand represents a producer's harvest signal: a structured
// {commodity, quantity, city} tuple, typically produced by the intake
// collaborator from a free-text report. The command validates the tuple before
// any state is touched.
//
// Example:
//
//	cmd, err := NewReportHarvestCommand(kernel.NewUUID(), producerID, "tomatoes", 50, "Kano")
//	if err != nil {
//	    return fmt.Errorf("invalid harvest report: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record harvest: %w", err)
//	}
type ReportHarvestCommand struct { //nolint:recvcheck //using for validation
	lotID      kernel.UUID
	producerID kernel.UUID
	commodity  string
	quantity   int
	city       string

	guard guard.ConstructorGuard
}

// NewReportHarvestCommand creates a command to record a new harvest lot.
// Validates that both identifiers are valid, the commodity and city are
// non-empty, and the quantity is positive.
func NewReportHarvestCommand(
	lotID kernel.UUID,
	producerID kernel.UUID,
	commodity string,
	quantity int,
	city string,
) (ReportHarvestCommand, error) {
	cmd := ReportHarvestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLotID(lotID),
		cmd.setProducerID(producerID),
		cmd.setCommodity(commodity),
		cmd.setQuantity(quantity),
		cmd.setCity(city),
	); err != nil {
		return ReportHarvestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportHarvestCommand) Validate() error {
	return c.guard.Validate(ErrReportHarvestCommandIsNotConstructed)
}

// LotID returns the unique identifier for the new lot.
func (c ReportHarvestCommand) LotID() kernel.UUID {
	return c.lotID
}

// ProducerID returns the identifier of the reporting producer.
func (c ReportHarvestCommand) ProducerID() kernel.UUID {
	return c.producerID
}

// Commodity returns the reported commodity name.
func (c ReportHarvestCommand) Commodity() string {
	return c.commodity
}

// Quantity returns the reported count of standard containers.
func (c ReportHarvestCommand) Quantity() int {
	return c.quantity
}

// City returns the reported origin city.
func (c ReportHarvestCommand) City() string {
	return c.city
}

func (c *ReportHarvestCommand) setLotID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.lotID = id
	return nil
}

func (c *ReportHarvestCommand) setProducerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.producerID = id
	return nil
}

func (c *ReportHarvestCommand) setCommodity(commodity string) error {
	if strings.TrimSpace(commodity) == "" {
		return errs.NewValueIsRequiredError("commodity")
	}
	c.commodity = commodity
	return nil
}

func (c *ReportHarvestCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	c.quantity = quantity
	return nil
}

func (c *ReportHarvestCommand) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValueIsRequiredError("city")
	}
	c.city = city
	return nil
}
