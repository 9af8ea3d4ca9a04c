package commands

import (
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var (
	ErrCreateDispatchCommandIsNotConstructed = errors.New(
		"CreateDispatchCommand must be created via NewCreateDispatchCommand constructor",
	)
)

// CreateDispatchCommand represents a request to turn a match into a dispatch
// order: claim the lot for the offer, assign the driver, and record the
// economics. The agreed price is not part of the command: it is snapshotted
// from the offer inside the transaction, so a caller can never dictate it.
//
// Example:
//
//	cost, _ := kernel.ParseMoney("15.00")
//	cmd, err := NewCreateDispatchCommand(kernel.NewUUID(), lotID, offerID, driverID, cost)
//	if err != nil {
//	    return err
//	}
//	order, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrLotAlreadyMatched):
//	    // another dispatch claimed the lot first; re-run matching on a fresh lot
//	case errors.Is(err, ErrOfferNoLongerActive):
//	    // the offer was withdrawn between selection and commit; re-run matching
//	}
type CreateDispatchCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	lotID         kernel.UUID
	offerID       kernel.UUID
	driverID      kernel.UUID
	transportCost kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateDispatchCommand creates a command to create a dispatch order.
// The transport cost may be zero but is validated non-negative by the Money
// type itself.
func NewCreateDispatchCommand(
	orderID kernel.UUID,
	lotID kernel.UUID,
	offerID kernel.UUID,
	driverID kernel.UUID,
	transportCost kernel.Money,
) (CreateDispatchCommand, error) {
	cmd := CreateDispatchCommand{
		transportCost: transportCost,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLotID(lotID),
		cmd.setOfferID(offerID),
		cmd.setDriverID(driverID),
	); err != nil {
		return CreateDispatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDispatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateDispatchCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new dispatch order.
func (c CreateDispatchCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LotID returns the identifier of the lot being claimed.
func (c CreateDispatchCommand) LotID() kernel.UUID {
	return c.lotID
}

// OfferID returns the identifier of the offer the lot is claimed for.
func (c CreateDispatchCommand) OfferID() kernel.UUID {
	return c.offerID
}

// DriverID returns the identifier of the driver account.
func (c CreateDispatchCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TransportCost returns the transport cost to record on the order.
func (c CreateDispatchCommand) TransportCost() kernel.Money {
	return c.transportCost
}

func (c *CreateDispatchCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateDispatchCommand) setLotID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.lotID = id
	return nil
}

func (c *CreateDispatchCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.offerID = id
	return nil
}

func (c *CreateDispatchCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}
