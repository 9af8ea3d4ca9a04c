package account

import (
	"errors"
	"fmt"

	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not created
	// through the NewAccount factory method.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrEscalationRequiresAdmin is returned when a role change is attempted by a
	// non-admin actor. Role escalation is the only mutation an account permits.
	ErrEscalationRequiresAdmin = errors.New("role escalation requires an admin actor")
)

// Account represents a verified identity on the platform. Identity and role
// verification happen in the auth collaborator; this aggregate only records
// the outcome and enforces that accounts are immutable once created, except
// for role escalation performed by an admin.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty contact handle, unique across accounts
//     (uniqueness is enforced by the entity store)
//   - Must have a valid role
//   - Can only be created through NewAccount
type Account struct {
	id     kernel.UUID
	handle string
	role   Role

	isConstructed bool
}

// NewAccount creates an Account with validation. This is the only way to
// create a valid Account.
func NewAccount(id kernel.UUID, handle string, role Role) (*Account, error) {
	acc := &Account{
		isConstructed: true,
	}

	if err := errors.Join(
		acc.setID(id),
		acc.setHandle(handle),
		acc.setRole(role),
	); err != nil {
		return nil, err
	}

	return acc, nil
}

// RestoreAccount reconstructs an Account from persistence without re-running
// creation-time validation beyond structural checks.
func RestoreAccount(id kernel.UUID, handle string, role Role) (*Account, error) {
	return NewAccount(id, handle, role)
}

// Validate ensures the Account was constructed through NewAccount.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Handle returns the account's unique contact handle.
func (a *Account) Handle() string {
	return a.handle
}

// Role returns the account's current role.
func (a *Account) Role() Role {
	return a.role
}

// Escalate changes the account's role. The actor performing the change must be
// an admin; everything else about an account is immutable after creation.
func (a *Account) Escalate(actor *Account, to Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.role != Admin {
		return ErrEscalationRequiresAdmin
	}
	if err := to.Validate(); err != nil {
		return err
	}

	a.role = to
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setHandle(handle string) error {
	if handle == "" {
		return errs.NewValueIsRequiredError("handle")
	}
	a.handle = handle
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return fmt.Errorf("account role: %w", err)
	}
	a.role = role
	return nil
}
