package commands

import (
	"errors"

	"bottleshop/internal/pkg/guard"
)

var ErrSendOtpCommandIsNotConstructed = errors.New(
	"SendOtpCommand must be created via NewSendOtpCommand constructor",
)

// SendOtpCommand represents a request to issue a one-time password to an
// account's email address.
type SendOtpCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewSendOtpCommand creates a command to send a one-time password.
func NewSendOtpCommand(email string) (SendOtpCommand, error) {
	cmd := SendOtpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEmail(email); err != nil {
		return SendOtpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOtpCommand) Validate() error {
	return c.guard.Validate(ErrSendOtpCommandIsNotConstructed)
}

// Email returns the recipient email address.
func (c SendOtpCommand) Email() string {
	return c.email
}

func (c *SendOtpCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}
