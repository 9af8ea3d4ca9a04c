package commands

import (
	"errors"
	"strings"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
	"agrilink/internal/pkg/guard"
)

var (
	ErrPlaceOfferCommandIsNotConstructed = errors.New(
		"PlaceOfferCommand must be created via NewPlaceOfferCommand constructor",
	)
)

// PlaceOfferCommand represents a buyer's standing demand signal: the set of
// commodities they accept, the destination city, and the unit price they are
// willing to pay.
type PlaceOfferCommand struct { //nolint:recvcheck //using for validation
	offerID     kernel.UUID
	buyerID     kernel.UUID
	commodities []string
	city        string
	price       kernel.Money

	guard guard.ConstructorGuard
}

// NewPlaceOfferCommand creates a command to place a standing buyer offer.
// Commodity-set deduplication happens in the aggregate; the command only
// rejects an empty list, empty city, and non-positive price up front.
func NewPlaceOfferCommand(
	offerID kernel.UUID,
	buyerID kernel.UUID,
	commodities []string,
	city string,
	price kernel.Money,
) (PlaceOfferCommand, error) {
	cmd := PlaceOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOfferID(offerID),
		cmd.setBuyerID(buyerID),
		cmd.setCommodities(commodities),
		cmd.setCity(city),
		cmd.setPrice(price),
	); err != nil {
		return PlaceOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOfferCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOfferCommandIsNotConstructed)
}

// OfferID returns the unique identifier for the new offer.
func (c PlaceOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// BuyerID returns the identifier of the buyer placing the offer.
func (c PlaceOfferCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Commodities returns the accepted commodity names as provided.
func (c PlaceOfferCommand) Commodities() []string {
	return c.commodities
}

// City returns the destination city name.
func (c PlaceOfferCommand) City() string {
	return c.city
}

// Price returns the offered unit price.
func (c PlaceOfferCommand) Price() kernel.Money {
	return c.price
}

func (c *PlaceOfferCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.offerID = id
	return nil
}

func (c *PlaceOfferCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}

func (c *PlaceOfferCommand) setCommodities(commodities []string) error {
	if len(commodities) == 0 {
		return errs.NewValueIsRequiredError("commodities")
	}
	c.commodities = commodities
	return nil
}

func (c *PlaceOfferCommand) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValueIsRequiredError("city")
	}
	c.city = city
	return nil
}

func (c *PlaceOfferCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}
