package commands

import (
	"context"
)

// EscalateRoleCommandHandler handles admin-driven role escalation.
// The admin check itself lives on the Account aggregate; the handler only
// loads both parties and persists the outcome.
type EscalateRoleCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewEscalateRoleCommandHandler creates a handler for role escalation.
func NewEscalateRoleCommandHandler(uowFactory AccountUoWFactory) EscalateRoleCommandHandler {
	return EscalateRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role escalation command.
// Fails if the actor is not an admin or either account does not exist.
func (h EscalateRoleCommandHandler) Handle(ctx context.Context, cmd EscalateRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	actor, err := accountRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	target, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = target.Escalate(actor, cmd.Role()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
