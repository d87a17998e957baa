package commands

import (
	"errors"

	"bottleshop/internal/pkg/guard"
)

var (
	ErrVerifyOtpCommandIsNotConstructed = errors.New(
		"VerifyOtpCommand must be created via NewVerifyOtpCommand constructor",
	)
	ErrOtpCodeIsRequired = errors.New("code is required")
)

// VerifyOtpCommand represents a request to redeem a one-time password.
// When newPassword is set the command doubles as a password reset: the
// password is changed only after the code checks out.
type VerifyOtpCommand struct { //nolint:recvcheck //using for validation
	email       string
	code        string
	newPassword string

	guard guard.ConstructorGuard
}

// NewVerifyOtpCommand creates a command to redeem a one-time password.
// newPassword may be empty when the caller only proves email ownership.
func NewVerifyOtpCommand(email, code, newPassword string) (VerifyOtpCommand, error) {
	cmd := VerifyOtpCommand{
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setCode(code),
	); err != nil {
		return VerifyOtpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOtpCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOtpCommandIsNotConstructed)
}

// Email returns the email address the code was issued for.
func (c VerifyOtpCommand) Email() string {
	return c.email
}

// Code returns the submitted one-time password.
func (c VerifyOtpCommand) Code() string {
	return c.code
}

// NewPassword returns the replacement password, empty when unused.
func (c VerifyOtpCommand) NewPassword() string {
	return c.newPassword
}

func (c *VerifyOtpCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *VerifyOtpCommand) setCode(code string) error {
	if code == "" {
		return ErrOtpCodeIsRequired
	}

	c.code = code
	return nil
}
