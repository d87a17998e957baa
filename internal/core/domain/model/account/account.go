package account

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account was not created
	// through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrNameIsRequired is returned when registering without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrEmailIsInvalid is returned when the email fails address parsing.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")

	// ErrPasswordTooShort is returned for passwords under eight characters.
	ErrPasswordTooShort = errs.NewValueIsInvalidError("password must be at least 8 characters")

	// ErrPasswordMismatch is returned when a login password does not match.
	ErrPasswordMismatch = errs.NewUnauthorizedError("password does not match")
)

const minPasswordLength = 8

// Account is an aggregate for every actor role: customer, vendor, courier,
// and admin. It carries the bcrypt password hash, the back-office
// verification state, and the uploaded document paths reviewed during
// verification.
type Account struct {
	// id uniquely identifies the account
	id kernel.UUID
	// role determines which API surface the account may use
	role Role
	// name is the display name
	name string
	// email is the unique login identifier, stored lowercase
	email string
	// phone is the contact number, possibly empty
	phone string
	// passwordHash is the bcrypt hash of the login password
	passwordHash []byte
	// verification is the back-office review state
	verification Verification
	// documents are uploaded proof file paths (ID, license)
	documents []string
	// createdAt is the registration timestamp
	createdAt time.Time

	isConstructed bool
}

// NewAccount registers an account in the pending verification state,
// hashing the plaintext password with bcrypt.
func NewAccount(
	id kernel.UUID,
	role Role,
	name string,
	email string,
	phone string,
	password string,
	documents []string,
	createdAt time.Time,
) (*Account, error) {
	a := &Account{
		verification:  VerificationPending,
		documents:     documents,
		phone:         phone,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setRole(role),
		a.setName(name),
		a.setEmail(email),
	); err != nil {
		return nil, err
	}

	if err := a.setPassword(password); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an account from persistence with its stored
// password hash and verification state.
func RestoreAccount(
	id kernel.UUID,
	role Role,
	name string,
	email string,
	phone string,
	passwordHash []byte,
	verification Verification,
	documents []string,
	createdAt time.Time,
) (*Account, error) {
	a := &Account{
		phone:         phone,
		documents:     documents,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setRole(role),
		a.setName(name),
		a.setEmail(email),
		verification.Validate(),
	); err != nil {
		return nil, err
	}

	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("password hash")
	}

	a.passwordHash = passwordHash
	a.verification = verification
	return a, nil
}

// Validate ensures the Account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Role returns the account role.
func (a *Account) Role() Role {
	return a.role
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the lowercase login email.
func (a *Account) Email() string {
	return a.email
}

// Phone returns the contact number, possibly empty.
func (a *Account) Phone() string {
	return a.phone
}

// PasswordHash returns the stored bcrypt hash for persistence.
func (a *Account) PasswordHash() []byte {
	return a.passwordHash
}

// Verification returns the back-office review state.
func (a *Account) Verification() Verification {
	return a.verification
}

// Documents returns the uploaded proof file paths.
func (a *Account) Documents() []string {
	return a.documents
}

// CreatedAt returns the registration timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// IsVerified reports whether the account passed document review.
func (a *Account) IsVerified() bool {
	return a.verification == Verified
}

// CheckPassword compares a login password against the stored hash.
// Returns ErrPasswordMismatch when they differ.
func (a *Account) CheckPassword(password string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// ResetPassword replaces the stored hash after OTP verification.
func (a *Account) ResetPassword(password string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return a.setPassword(password)
}

// Decide applies an admin verification decision.
func (a *Account) Decide(outcome Verification) error {
	if err := a.Validate(); err != nil {
		return err
	}

	newState, err := a.verification.Decide(outcome)
	if err != nil {
		return err
	}

	a.verification = newState
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrEmailIsInvalid
	}
	a.email = email
	return nil
}

func (a *Account) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	a.passwordHash = hash
	return nil
}
