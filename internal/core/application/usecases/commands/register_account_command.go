package commands

import (
	"errors"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrAccountNameIsRequired = errors.New("name is required")
	ErrEmailIsRequired       = errors.New("email is required")
	ErrPasswordIsRequired    = errors.New("password is required")
)

// RegisterAccountCommand represents a request to register a platform account.
// Vendors and couriers attach verification documents and start in the
// pending verification state.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	role      account.Role
	name      string
	email     string
	phone     string
	password  string
	documents []string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Validates that the ID, role, name, email and password are present.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	role account.Role,
	name string,
	email string,
	phone string,
	password string,
	documents []string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		phone:     phone,
		documents: documents,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setRole(role),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Role returns the requested platform role.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

// Name returns the display name.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Email returns the login email address.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Phone returns the contact phone number.
func (c RegisterAccountCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password to be hashed.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// Documents returns the uploaded verification document paths.
func (c RegisterAccountCommand) Documents() []string {
	return c.documents
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if name == "" {
		return ErrAccountNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
