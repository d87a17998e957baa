package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"bottleshop/internal/core/ports"
	"bottleshop/internal/pkg/errs"
)

const (
	otpTTL    = 10 * time.Minute
	otpDigits = 6
)

// SendOtpCommandHandler issues a one-time password for an existing account.
// The code is stored with a TTL and mailed to the account's address.
type SendOtpCommandHandler struct {
	uowFactory AccountUoWFactory
	otpStore   ports.OtpStore
	mailer     ports.Mailer
}

// NewSendOtpCommandHandler creates a handler for one-time password issuance.
func NewSendOtpCommandHandler(
	uowFactory AccountUoWFactory,
	otpStore ports.OtpStore,
	mailer ports.Mailer,
) SendOtpCommandHandler {
	return SendOtpCommandHandler{
		uowFactory: uowFactory,
		otpStore:   otpStore,
		mailer:     mailer,
	}
}

// Handle generates a fresh code, stores it under the email with a ten minute
// TTL and sends it out. A new code replaces any previously issued one.
func (h *SendOtpCommandHandler) Handle(ctx context.Context, cmd SendOtpCommand) error {
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

	acc, err := uow.AccountRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}

	code, err := generateOtpCode()
	if err != nil {
		return err
	}

	if err = h.otpStore.Save(ctx, acc.Email(), code, otpTTL); err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code, int(otpTTL.Minutes()))
	if err = h.mailer.Send(ctx, acc.Email(), "Your verification code", body); err != nil {
		return errs.NewUpstreamFailureError("otp mail delivery", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func generateOtpCode() (string, error) {
	limit := big.NewInt(1)
	for range otpDigits {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
