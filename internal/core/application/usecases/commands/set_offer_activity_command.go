package commands

import (
	"errors"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var (
	ErrSetOfferActivityCommandIsNotConstructed = errors.New(
		"SetOfferActivityCommand must be created via NewSetOfferActivityCommand constructor",
	)
)

// SetOfferActivityCommand toggles an offer's participation in matching.
// Both directions are idempotent, and neither affects dispatch orders already
// created from the offer.
type SetOfferActivityCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID
	active  bool

	guard guard.ConstructorGuard
}

// NewSetOfferActivityCommand creates a command to activate or deactivate an offer.
func NewSetOfferActivityCommand(offerID kernel.UUID, active bool) (SetOfferActivityCommand, error) {
	cmd := SetOfferActivityCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setOfferID(offerID); err != nil {
		return SetOfferActivityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOfferActivityCommand) Validate() error {
	return c.guard.Validate(ErrSetOfferActivityCommandIsNotConstructed)
}

// OfferID returns the identifier of the offer being toggled.
func (c SetOfferActivityCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Active returns the desired activity state.
func (c SetOfferActivityCommand) Active() bool {
	return c.active
}

func (c *SetOfferActivityCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.offerID = id
	return nil
}
