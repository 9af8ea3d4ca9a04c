// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"agrilink/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// LotRepoFactory provides access to the lot repository within a transaction.
	LotRepoFactory interface {
		LotRepository() ports.LotRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// DispatchRepoFactory provides access to the dispatch repository within a transaction.
	DispatchRepoFactory interface {
		DispatchRepository() ports.DispatchRepository
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// LotUoW manages transactions for harvest reporting: it touches the lot
	// being created and reads the producer account that owns it.
	LotUoW interface {
		TxManager
		LotRepoFactory
		AccountRepoFactory
	}

	// LotUoWFactory creates new lot unit of work instances.
	LotUoWFactory interface {
		Create() LotUoW
	}

	// OfferUoW manages transactions for offer operations: the offer itself plus
	// the buyer account that owns it.
	OfferUoW interface {
		TxManager
		OfferRepoFactory
		AccountRepoFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// DispatchUoW manages transactions that span the whole dispatch lifecycle:
	// the lot being claimed, the offer it is claimed for, the driver account,
	// and the dispatch order itself.
	DispatchUoW interface {
		TxManager
		LotRepoFactory
		OfferRepoFactory
		DispatchRepoFactory
		AccountRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
