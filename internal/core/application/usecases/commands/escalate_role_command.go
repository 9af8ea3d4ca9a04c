package commands

import (
	"errors"

	"agrilink/internal/core/domain/model/account"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/guard"
)

var (
	ErrEscalateRoleCommandIsNotConstructed = errors.New(
		"EscalateRoleCommand must be created via NewEscalateRoleCommand constructor",
	)
)

// EscalateRoleCommand represents an admin's request to change another
// account's role, the only mutation an account permits after creation.
type EscalateRoleCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	accountID kernel.UUID
	role      account.Role

	guard guard.ConstructorGuard
}

// NewEscalateRoleCommand creates a command for an admin (actorID) to change
// the role of the target account.
func NewEscalateRoleCommand(actorID, accountID kernel.UUID, role account.Role) (EscalateRoleCommand, error) {
	cmd := EscalateRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setAccountID(accountID),
		cmd.setRole(role),
	); err != nil {
		return EscalateRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateRoleCommand) Validate() error {
	return c.guard.Validate(ErrEscalateRoleCommandIsNotConstructed)
}

// ActorID returns the identifier of the admin performing the escalation.
func (c EscalateRoleCommand) ActorID() kernel.UUID {
	return c.actorID
}

// AccountID returns the identifier of the account being escalated.
func (c EscalateRoleCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Role returns the role the account is being escalated to.
func (c EscalateRoleCommand) Role() account.Role {
	return c.role
}

func (c *EscalateRoleCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *EscalateRoleCommand) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.accountID = id
	return nil
}

func (c *EscalateRoleCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
