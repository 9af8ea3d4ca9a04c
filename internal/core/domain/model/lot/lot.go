package lot

import (
	"errors"
	"fmt"
	"strings"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
)

// ErrHarvestLotIsNotConstructed is returned when a HarvestLot instance was not
// created through the NewHarvestLot factory method.
var ErrHarvestLotIsNotConstructed = errors.New("HarvestLot must be created via NewHarvestLot constructor")

// HarvestLot represents a quantity of one commodity reported as available by a
// producer. It is the contended resource of the whole system: many dispatch
// creations may race to claim the same lot, and the status field is the only
// thing they are allowed to fight over.
//
// Invariants:
//   - Must have a valid unique identifier and producer identifier
//   - Commodity and origin city must be non-empty
//   - Quantity is a positive count of standard containers
//   - Status only ever moves forward (Pending -> Matched -> Collected)
//   - Once Matched, everything except the status field is frozen
type HarvestLot struct {
	id         kernel.UUID
	producerID kernel.UUID
	commodity  string
	quantity   int
	origin     kernel.City
	status     Status

	isConstructed bool
}

// NewHarvestLot creates a HarvestLot in Pending status with validation.
// This is the only way to create a valid HarvestLot.
//
// The commodity name is normalized to lower case so that index lookups and
// offer membership tests are case-insensitive.
//
// Example:
//
//	origin, _ := kernel.NewCity("Kano")
//	l, err := lot.NewHarvestLot(kernel.NewUUID(), producerID, "Tomatoes", 50, origin)
//	if err != nil {
//	    // handle validation error
//	}
func NewHarvestLot(
	id kernel.UUID,
	producerID kernel.UUID,
	commodity string,
	quantity int,
	origin kernel.City,
) (*HarvestLot, error) {
	l := &HarvestLot{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setProducerID(producerID),
		l.setCommodity(commodity),
		l.setQuantity(quantity),
		l.setOrigin(origin),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreHarvestLot reconstructs a HarvestLot from persistence, including its
// current status. Used by repository adapters only.
func RestoreHarvestLot(
	id kernel.UUID,
	producerID kernel.UUID,
	commodity string,
	quantity int,
	origin kernel.City,
	status Status,
) (*HarvestLot, error) {
	l, err := NewHarvestLot(id, producerID, commodity, quantity, origin)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	l.status = status
	return l, nil
}

// Validate ensures the HarvestLot was constructed through NewHarvestLot.
func (l *HarvestLot) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrHarvestLotIsNotConstructed
	}
	return nil
}

// IsEqual compares two lots by identifier.
func (l *HarvestLot) IsEqual(other *HarvestLot) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the lot's unique identifier.
func (l *HarvestLot) ID() kernel.UUID {
	return l.id
}

// ProducerID returns the identifier of the producer account owning the lot.
func (l *HarvestLot) ProducerID() kernel.UUID {
	return l.producerID
}

// Commodity returns the normalized commodity name.
func (l *HarvestLot) Commodity() string {
	return l.commodity
}

// Quantity returns the lot size as a count of standard containers.
func (l *HarvestLot) Quantity() int {
	return l.quantity
}

// Origin returns the city where the lot is available.
func (l *HarvestLot) Origin() kernel.City {
	return l.origin
}

// Status returns the lot's current lifecycle status.
func (l *HarvestLot) Status() Status {
	return l.status
}

// ValidateMatch reports whether the lot may currently be claimed by a dispatch
// order. It does not perform the transition; the authoritative claim happens
// as a compare-and-swap in the entity store.
func (l *HarvestLot) ValidateMatch() error {
	return l.status.ValidateMatch()
}

// MarkMatched transitions the lot to Matched.
// Only a Pending lot can be matched; the transition is one-way.
func (l *HarvestLot) MarkMatched() error {
	newStatus, err := l.status.Match()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

// MarkCollected transitions the lot to Collected after a successful delivery.
// Only a Matched lot can be collected; Collected is terminal.
func (l *HarvestLot) MarkCollected() error {
	newStatus, err := l.status.Collect()
	if err != nil {
		return err
	}

	l.status = newStatus
	return nil
}

func (l *HarvestLot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *HarvestLot) setProducerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("producer: %w", err)
	}
	l.producerID = id
	return nil
}

func (l *HarvestLot) setCommodity(commodity string) error {
	normalized := strings.ToLower(strings.TrimSpace(commodity))
	if normalized == "" {
		return errs.NewValueIsRequiredError("commodity")
	}
	l.commodity = normalized
	return nil
}

func (l *HarvestLot) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *HarvestLot) setOrigin(origin kernel.City) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	l.origin = origin
	return nil
}
