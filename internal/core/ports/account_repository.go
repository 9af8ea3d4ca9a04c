package ports

import (
	"context"

	"agrilink/internal/core/domain/model/account"
	"agrilink/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
// Handle uniqueness is enforced by the store.
type AccountRepository interface {
	// Add persists a new account.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists a role escalation to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)
}
