package commands

import (
	"errors"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/guard"
)

var (
	ErrVerifyAccountCommandIsNotConstructed = errors.New(
		"VerifyAccountCommand must be created via NewVerifyAccountCommand constructor",
	)
	ErrVerificationOutcomeIsInvalid = errors.New("verification outcome must be verified or rejected")
)

// VerifyAccountCommand represents an admin decision on a pending account:
// approve it or reject it.
type VerifyAccountCommand struct { //nolint:recvcheck //using for validation
	adminID   kernel.UUID
	accountID kernel.UUID
	outcome   account.Verification

	guard guard.ConstructorGuard
}

// NewVerifyAccountCommand creates a command carrying an admin verification
// decision. The outcome must be Verified or VerificationRejected.
func NewVerifyAccountCommand(
	adminID kernel.UUID,
	accountID kernel.UUID,
	outcome account.Verification,
) (VerifyAccountCommand, error) {
	cmd := VerifyAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAdminID(adminID),
		cmd.setAccountID(accountID),
		cmd.setOutcome(outcome),
	); err != nil {
		return VerifyAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyAccountCommand) Validate() error {
	return c.guard.Validate(ErrVerifyAccountCommandIsNotConstructed)
}

// AdminID returns the identifier of the deciding admin.
func (c VerifyAccountCommand) AdminID() kernel.UUID {
	return c.adminID
}

// AccountID returns the identifier of the account under review.
func (c VerifyAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Outcome returns the decided verification state.
func (c VerifyAccountCommand) Outcome() account.Verification {
	return c.outcome
}

func (c *VerifyAccountCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *VerifyAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *VerifyAccountCommand) setOutcome(outcome account.Verification) error {
	if outcome != account.Verified && outcome != account.VerificationRejected {
		return ErrVerificationOutcomeIsInvalid
	}

	c.outcome = outcome
	return nil
}
