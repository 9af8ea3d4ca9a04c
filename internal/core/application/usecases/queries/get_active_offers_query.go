package queries

import (
	"errors"
	"strings"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var (
	ErrGetActiveOffersQueryIsNotConstructed = errors.New(
		"GetActiveOffersQuery must be created via NewGetActiveOffersQuery constructor",
	)
)

// GetActiveOffersQuery retrieves standing buyer offers that are currently
// accepting matches, optionally narrowed to those accepting one commodity.
type GetActiveOffersQuery struct {
	commodity string

	guard guard.ConstructorGuard
}

// NewGetActiveOffersQuery creates a query for active offers. The commodity
// filter is optional.
func NewGetActiveOffersQuery(commodity string) GetActiveOffersQuery {
	return GetActiveOffersQuery{
		commodity: strings.ToLower(strings.TrimSpace(commodity)),
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOffersQueryIsNotConstructed)
}

// Commodity returns the commodity filter, empty for no filter.
func (q GetActiveOffersQuery) Commodity() string {
	return q.commodity
}

// GetActiveOffersQueryResponse represents one active offer in the listing.
type GetActiveOffersQueryResponse struct {
	ID              kernel.UUID
	BuyerID         kernel.UUID
	Commodities     []string
	DestinationCity string
	Price           kernel.Money
}
