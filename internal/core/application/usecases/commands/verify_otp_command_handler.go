package commands

import (
	"context"
	"crypto/subtle"
	"errors"

	"bottleshop/internal/core/ports"
	"bottleshop/internal/pkg/errs"
)

// VerifyOtpCommandHandler redeems one-time passwords. Each stored code is
// consumed on the first attempt against it, matching or not, so a code can
// never be replayed.
type VerifyOtpCommandHandler struct {
	uowFactory AccountUoWFactory
	otpStore   ports.OtpStore
}

// NewVerifyOtpCommandHandler creates a handler for one-time password redemption.
func NewVerifyOtpCommandHandler(uowFactory AccountUoWFactory, otpStore ports.OtpStore) VerifyOtpCommandHandler {
	return VerifyOtpCommandHandler{
		uowFactory: uowFactory,
		otpStore:   otpStore,
	}
}

// Handle verifies the submitted code against the stored one. Expired, absent
// and mismatched codes all fail the same way. When the command carries a new
// password it is applied after the code checks out.
func (h *VerifyOtpCommandHandler) Handle(ctx context.Context, cmd VerifyOtpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	stored, err := h.otpStore.Consume(ctx, cmd.Email())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return errs.NewValueIsInvalidError("code is invalid or expired")
		}
		return err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(cmd.Code())) != 1 {
		return errs.NewValueIsInvalidError("code is invalid or expired")
	}

	if cmd.NewPassword() == "" {
		return nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	acc, err := accountRepo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}

	if err = acc.ResetPassword(cmd.NewPassword()); err != nil {
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
