package queries

import (
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var (
	ErrFindMatchQueryIsNotConstructed = errors.New(
		"FindMatchQuery must be created via NewFindMatchQuery constructor",
	)
)

// FindMatchQuery asks the matching engine which buyer offer a pending harvest
// lot should be dispatched to. The answer is advisory: nothing is claimed or
// written, and the returned offer may have been deactivated by the time a
// dispatch is actually created for it.
//
// Example:
//
//	query, err := NewFindMatchQuery(lotID)
//	if err != nil {
//	    return err
//	}
//	match, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrOfferNotFound) {
//	    // no demand right now; the lot stays pending
//	}
type FindMatchQuery struct {
	lotID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFindMatchQuery creates a query to find the best offer for the given lot.
func NewFindMatchQuery(lotID kernel.UUID) (FindMatchQuery, error) {
	if err := lotID.Validate(); err != nil {
		return FindMatchQuery{}, err
	}

	return FindMatchQuery{
		lotID: lotID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindMatchQuery) Validate() error {
	return q.guard.Validate(ErrFindMatchQueryIsNotConstructed)
}

// LotID returns the identifier of the lot to match.
func (q FindMatchQuery) LotID() kernel.UUID {
	return q.lotID
}

// FindMatchQueryResponse describes the selected offer and the ranking inputs
// that selected it.
type FindMatchQueryResponse struct {
	OfferID       kernel.UUID
	BuyerID       kernel.UUID
	Price         kernel.Money
	Destination   string
	DistanceProxy int
}
