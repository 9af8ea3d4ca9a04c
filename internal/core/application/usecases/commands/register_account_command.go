package commands

import (
	"errors"

	"agrilink/internal/core/domain/model/account"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"
	"agrilink/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
)

// RegisterAccountCommand represents a request to register a platform account
// with a verified role. The identity is assumed already authenticated by the
// auth collaborator; the core only records it.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	handle    string
	role      account.Role

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register an account.
// Validates that the account ID is valid, the handle is non-empty, and the
// role is one of the defined roles.
func NewRegisterAccountCommand(accountID kernel.UUID, handle string, role account.Role) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setHandle(handle),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Handle returns the account's contact handle.
func (c RegisterAccountCommand) Handle() string {
	return c.handle
}

// Role returns the account's verified role.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

func (c *RegisterAccountCommand) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.accountID = id
	return nil
}

func (c *RegisterAccountCommand) setHandle(handle string) error {
	if handle == "" {
		return errs.NewValueIsRequiredError("handle")
	}
	c.handle = handle
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
