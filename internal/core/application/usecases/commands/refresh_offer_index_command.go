package commands

import (
	"errors"

	"agrilink/internal/pkg/guard"
)

var ErrRefreshOfferIndexCommandIsNotConstructed = errors.New(
	"RefreshOfferIndexCommand must be created via NewRefreshOfferIndexCommand constructor",
)

// RefreshOfferIndexCommand triggers a full rebuild of the offer index from the
// entity store. The index is updated incrementally on every offer change, but
// those updates are best-effort; the periodic rebuild puts an upper bound on
// how stale the index can get.
type RefreshOfferIndexCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshOfferIndexCommand creates a new command to trigger an index rebuild.
// This is a parameterless command, typically issued by the scheduled refresh job.
func NewRefreshOfferIndexCommand() RefreshOfferIndexCommand {
	return RefreshOfferIndexCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RefreshOfferIndexCommand) Validate() error {
	return c.guard.Validate(
		ErrRefreshOfferIndexCommandIsNotConstructed,
	)
}
