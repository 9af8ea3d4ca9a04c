package offer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
)

// ErrBuyerOfferIsNotConstructed is returned when a BuyerOffer instance was not
// created through the NewBuyerOffer factory method.
var ErrBuyerOfferIsNotConstructed = errors.New("BuyerOffer must be created via NewBuyerOffer constructor")

// BuyerOffer is a standing demand signal: a buyer is willing to pay a stated
// unit price for any of a set of commodities, delivered to a destination city.
//
// Invariants:
//   - Must have valid unique and buyer identifiers
//   - The accepted commodity set is non-empty and deduplicated
//   - The unit price is strictly positive
//   - Only offers with the active flag set participate in matching
//
// Deactivation is idempotent and never touches dispatch orders already created
// from the offer: an order snapshots the price at match time rather than
// referencing the offer's current price.
type BuyerOffer struct {
	id          kernel.UUID
	buyerID     kernel.UUID
	commodities map[string]struct{}
	destination kernel.City
	price       kernel.Money
	active      bool
	createdAt   time.Time

	isConstructed bool
}

// NewBuyerOffer creates an active BuyerOffer with validation. This is the only
// way to create a valid BuyerOffer. Commodity names are normalized to lower
// case and deduplicated; at least one non-empty name is required.
//
// Example:
//
//	destination, _ := kernel.NewCity("Lagos")
//	price, _ := kernel.ParseMoney("120.00")
//	o, err := offer.NewBuyerOffer(kernel.NewUUID(), buyerID,
//	    []string{"Tomatoes", "tomatoes", "Onions"}, destination, price, time.Now())
//	// o.Commodities() == []string{"onions", "tomatoes"}
func NewBuyerOffer(
	id kernel.UUID,
	buyerID kernel.UUID,
	commodities []string,
	destination kernel.City,
	price kernel.Money,
	createdAt time.Time,
) (*BuyerOffer, error) {
	o := &BuyerOffer{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setCommodities(commodities),
		o.setDestination(destination),
		o.setPrice(price),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreBuyerOffer reconstructs a BuyerOffer from persistence, including its
// active flag. Used by repository adapters only.
func RestoreBuyerOffer(
	id kernel.UUID,
	buyerID kernel.UUID,
	commodities []string,
	destination kernel.City,
	price kernel.Money,
	active bool,
	createdAt time.Time,
) (*BuyerOffer, error) {
	o, err := NewBuyerOffer(id, buyerID, commodities, destination, price, createdAt)
	if err != nil {
		return nil, err
	}

	o.active = active
	return o, nil
}

// Validate ensures the BuyerOffer was constructed through NewBuyerOffer.
func (o *BuyerOffer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrBuyerOfferIsNotConstructed
	}
	return nil
}

// IsEqual compares two offers by identifier.
func (o *BuyerOffer) IsEqual(other *BuyerOffer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the offer's unique identifier.
func (o *BuyerOffer) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the identifier of the buyer account owning the offer.
func (o *BuyerOffer) BuyerID() kernel.UUID {
	return o.buyerID
}

// Commodities returns the accepted commodity names, sorted and deduplicated.
func (o *BuyerOffer) Commodities() []string {
	names := make([]string, 0, len(o.commodities))
	for name := range o.commodities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Accepts reports whether the offer's commodity set contains the given
// commodity (case-insensitive).
func (o *BuyerOffer) Accepts(commodity string) bool {
	_, ok := o.commodities[strings.ToLower(strings.TrimSpace(commodity))]
	return ok
}

// Destination returns the city the buyer wants goods delivered to.
func (o *BuyerOffer) Destination() kernel.City {
	return o.destination
}

// Price returns the offered unit price.
func (o *BuyerOffer) Price() kernel.Money {
	return o.price
}

// IsActive reports whether the offer participates in matching.
func (o *BuyerOffer) IsActive() bool {
	return o.active
}

// CreatedAt returns the offer's creation time, used as the ranking tie-break.
func (o *BuyerOffer) CreatedAt() time.Time {
	return o.createdAt
}

// Deactivate withdraws the offer from matching. Idempotent: deactivating an
// inactive offer is a no-op. Orders already created from the offer keep their
// snapshot price.
func (o *BuyerOffer) Deactivate() {
	o.active = false
}

// Reactivate returns the offer to the matching pool. Idempotent.
func (o *BuyerOffer) Reactivate() {
	o.active = true
}

// ChangePrice updates the offered unit price for future matches. Orders
// already created keep the price snapshot taken at their match time.
func (o *BuyerOffer) ChangePrice(price kernel.Money) error {
	return o.setPrice(price)
}

func (o *BuyerOffer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *BuyerOffer) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("buyer: %w", err)
	}
	o.buyerID = id
	return nil
}

func (o *BuyerOffer) setCommodities(commodities []string) error {
	set := make(map[string]struct{}, len(commodities))
	for _, name := range commodities {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			return errs.NewValueIsInvalidErrorWithCause(
				"commodities are invalid",
				errors.New("commodity names must be non-empty"),
			)
		}
		set[normalized] = struct{}{}
	}
	if len(set) == 0 {
		return errs.NewValueIsRequiredError("commodities")
	}

	o.commodities = set
	return nil
}

func (o *BuyerOffer) setDestination(destination kernel.City) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *BuyerOffer) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	o.price = price
	return nil
}

func (o *BuyerOffer) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
