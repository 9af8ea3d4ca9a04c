package queries

import (
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var (
	ErrGetDispatchOrderQueryIsNotConstructed = errors.New(
		"GetDispatchOrderQuery must be created via NewGetDispatchOrderQuery constructor",
	)
)

// GetDispatchOrderQuery retrieves one dispatch order with its full economics:
// the agreed price snapshot, the transport cost, and the platform fee.
type GetDispatchOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDispatchOrderQuery creates a query for a single dispatch order.
func NewGetDispatchOrderQuery(orderID kernel.UUID) (GetDispatchOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDispatchOrderQuery{}, err
	}

	return GetDispatchOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the dispatch order.
func (q GetDispatchOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetDispatchOrderQueryResponse represents one dispatch order with its
// economics and delivery status.
type GetDispatchOrderQueryResponse struct {
	ID            kernel.UUID
	LotID         kernel.UUID
	OfferID       kernel.UUID
	DriverID      kernel.UUID
	AgreedPrice   kernel.Money
	TransportCost kernel.Money
	PlatformFee   kernel.Money
	Status        string
}
