package commands

import (
	"context"

	"agrilink/internal/core/domain/model/account"
)

// RegisterAccountCommandHandler handles the business logic for account
// registration. Uses a transaction so the uniqueness of the contact handle is
// checked and the account persisted atomically.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account registration command.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
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

	acc, err := account.NewAccount(cmd.AccountID(), cmd.Handle(), cmd.Role())
	if err != nil {
		return err
	}

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
