package commands

import (
	"context"
	"errors"
	"time"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/pkg/errs"
)

// RegisterAccountCommandHandler handles the business logic for account
// registration. Rejects duplicate emails and persists the account in the
// pending verification state.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Fails with a conflict error when the email is already taken.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
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

	_, err := accountRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewConflictError("email is already registered")
	}

	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return err
	}

	acc, err := account.NewAccount(
		cmd.AccountID(),
		cmd.Role(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Password(),
		cmd.Documents(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, acc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
