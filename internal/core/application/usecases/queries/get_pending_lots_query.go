package queries

import (
	"errors"
	"strings"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var (
	ErrGetPendingLotsQueryIsNotConstructed = errors.New(
		"GetPendingLotsQuery must be created via NewGetPendingLotsQuery constructor",
	)
)

// GetPendingLotsQuery retrieves harvest lots awaiting a match, optionally
// narrowed by commodity or origin city. Empty filters mean "all".
type GetPendingLotsQuery struct {
	commodity string
	city      string

	guard guard.ConstructorGuard
}

// NewGetPendingLotsQuery creates a query for pending lots. Both filters are
// optional; commodity matching is case-insensitive like the rest of the
// system.
func NewGetPendingLotsQuery(commodity, city string) GetPendingLotsQuery {
	return GetPendingLotsQuery{
		commodity: strings.ToLower(strings.TrimSpace(commodity)),
		city:      strings.TrimSpace(city),
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingLotsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingLotsQueryIsNotConstructed)
}

// Commodity returns the commodity filter, empty for no filter.
func (q GetPendingLotsQuery) Commodity() string {
	return q.commodity
}

// City returns the origin city filter, empty for no filter.
func (q GetPendingLotsQuery) City() string {
	return q.city
}

// GetPendingLotsQueryResponse represents one pending lot in the listing.
type GetPendingLotsQueryResponse struct {
	ID         kernel.UUID
	ProducerID kernel.UUID
	Commodity  string
	Quantity   int
	OriginCity string
}
