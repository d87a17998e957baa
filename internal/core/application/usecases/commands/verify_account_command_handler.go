package commands

import (
	"context"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/pkg/errs"
)

// VerifyAccountCommandHandler applies an admin verification decision to a
// pending vendor or courier account.
type VerifyAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewVerifyAccountCommandHandler creates a handler for verification decisions.
func NewVerifyAccountCommandHandler(uowFactory AccountUoWFactory) VerifyAccountCommandHandler {
	return VerifyAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification decision.
// The caller must hold the admin role, otherwise the decision is rejected.
func (h *VerifyAccountCommandHandler) Handle(ctx context.Context, cmd VerifyAccountCommand) error {
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

	admin, err := accountRepo.Get(ctx, cmd.AdminID())
	if err != nil {
		return err
	}
	if admin.Role() != account.RoleAdmin {
		return errs.NewUnauthorizedError("only admins can verify accounts")
	}

	acc, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = acc.Decide(cmd.Outcome()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
