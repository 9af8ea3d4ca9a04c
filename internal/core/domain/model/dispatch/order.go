package dispatch

import (
	"errors"
	"fmt"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
)

var (
	// ErrDispatchOrderIsNotConstructed is returned when a DispatchOrder instance was
	// not created through the NewDispatchOrder factory method.
	ErrDispatchOrderIsNotConstructed = errors.New("DispatchOrder must be created via NewDispatchOrder constructor")

	// ErrPlatformFeeMismatch is returned when a persisted order carries a fee
	// that does not equal the fee derived from its agreed price. The fee is
	// write-once, so a mismatch means the stored record was corrupted.
	ErrPlatformFeeMismatch = errors.New("stored platform fee does not match the derived fee")
)

// DispatchOrder records one fulfillment: the transactional link between a
// matched harvest lot, the buyer offer that claimed it, and the driver who
// carries it.
//
// The agreed price is a snapshot of the offer price at match time; later offer
// edits never affect it. The platform fee is derived from the agreed price at
// construction, and since the aggregate exposes no setter for either field,
// the fee can never be recomputed or independently set afterwards.
//
// Invariants:
//   - References exactly one lot, one offer, and one driver (all valid IDs)
//   - Transport cost is non-negative
//   - platformFee == agreedPrice.PlatformFee(), always
//   - Delivery status only moves InTransit -> Delivered or InTransit -> Failed
type DispatchOrder struct {
	id            kernel.UUID
	lotID         kernel.UUID
	offerID       kernel.UUID
	driverID      kernel.UUID
	agreedPrice   kernel.Money
	transportCost kernel.Money
	platformFee   kernel.Money
	status        DeliveryStatus

	isConstructed bool
}

// NewDispatchOrder creates a DispatchOrder in InTransit status with validation.
// This is the only way to create a valid DispatchOrder. The platform fee is
// computed here, once, from the agreed price snapshot.
//
// Example:
//
//	price, _ := kernel.ParseMoney("120.00")
//	cost, _ := kernel.ParseMoney("15.00")
//	o, err := dispatch.NewDispatchOrder(kernel.NewUUID(), lotID, offerID, driverID, price, cost)
//	// o.PlatformFee().String() == "6.00"
func NewDispatchOrder(
	id kernel.UUID,
	lotID kernel.UUID,
	offerID kernel.UUID,
	driverID kernel.UUID,
	agreedPrice kernel.Money,
	transportCost kernel.Money,
) (*DispatchOrder, error) {
	o := &DispatchOrder{
		status:        InTransit,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLotID(lotID),
		o.setOfferID(offerID),
		o.setDriverID(driverID),
		o.setAgreedPrice(agreedPrice),
		o.setTransportCost(transportCost),
	); err != nil {
		return nil, err
	}

	o.platformFee = o.agreedPrice.PlatformFee()
	return o, nil
}

// RestoreDispatchOrder reconstructs a DispatchOrder from persistence. The
// stored fee is checked against the fee derived from the agreed price; a
// mismatch fails with ErrPlatformFeeMismatch rather than being silently
// patched.
func RestoreDispatchOrder(
	id kernel.UUID,
	lotID kernel.UUID,
	offerID kernel.UUID,
	driverID kernel.UUID,
	agreedPrice kernel.Money,
	transportCost kernel.Money,
	platformFee kernel.Money,
	status DeliveryStatus,
) (*DispatchOrder, error) {
	o, err := NewDispatchOrder(id, lotID, offerID, driverID, agreedPrice, transportCost)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if !o.platformFee.IsEqual(platformFee) {
		return nil, fmt.Errorf("%w: stored %s, derived %s", ErrPlatformFeeMismatch, platformFee, o.platformFee)
	}

	o.status = status
	return o, nil
}

// Validate ensures the DispatchOrder was constructed through NewDispatchOrder.
func (o *DispatchOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrDispatchOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *DispatchOrder) IsEqual(other *DispatchOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *DispatchOrder) ID() kernel.UUID {
	return o.id
}

// LotID returns the identifier of the claimed harvest lot.
func (o *DispatchOrder) LotID() kernel.UUID {
	return o.lotID
}

// OfferID returns the identifier of the buyer offer the order was created from.
func (o *DispatchOrder) OfferID() kernel.UUID {
	return o.offerID
}

// DriverID returns the identifier of the driver account carrying the order.
func (o *DispatchOrder) DriverID() kernel.UUID {
	return o.driverID
}

// AgreedPrice returns the unit price snapshot taken at match time.
func (o *DispatchOrder) AgreedPrice() kernel.Money {
	return o.agreedPrice
}

// TransportCost returns the transport cost recorded at creation.
func (o *DispatchOrder) TransportCost() kernel.Money {
	return o.transportCost
}

// PlatformFee returns the fee derived once at creation: 5% of the agreed
// price, rounded to currency precision.
func (o *DispatchOrder) PlatformFee() kernel.Money {
	return o.platformFee
}

// Status returns the order's current delivery status.
func (o *DispatchOrder) Status() DeliveryStatus {
	return o.status
}

// MarkDelivered transitions the order to Delivered.
// Only an InTransit order can be delivered; Delivered is terminal.
func (o *DispatchOrder) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkFailed transitions the order to Failed.
// Only an InTransit order can fail; Failed is terminal. The claimed lot is not
// released back to the pool by this transition.
func (o *DispatchOrder) MarkFailed() error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *DispatchOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *DispatchOrder) setLotID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("lot: %w", err)
	}
	o.lotID = id
	return nil
}

func (o *DispatchOrder) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("offer: %w", err)
	}
	o.offerID = id
	return nil
}

func (o *DispatchOrder) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("driver: %w", err)
	}
	o.driverID = id
	return nil
}

func (o *DispatchOrder) setAgreedPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"agreed price is invalid",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	o.agreedPrice = price
	return nil
}

func (o *DispatchOrder) setTransportCost(cost kernel.Money) error {
	// Money cannot be negative by construction; the zero value is a valid
	// free-transport cost, so nothing further to check.
	o.transportCost = cost
	return nil
}
