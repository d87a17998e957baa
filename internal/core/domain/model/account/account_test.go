package account_test

import (
	"testing"
	"time"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVendorAccount(t *testing.T) *account.Account {
	t.Helper()
	a, err := account.NewAccount(
		kernel.NewUUID(),
		account.RoleVendor,
		"Cask & Barrel",
		"owner@caskbarrel.example",
		"+15550123",
		"correct horse battery",
		[]string{"/uploads/docs/license.pdf"},
		time.Now(),
	)
	require.NoError(t, err)
	return a
}

func TestNewAccount(t *testing.T) {
	t.Run("starts pending with hashed password", func(t *testing.T) {
		a := newVendorAccount(t)
		assert.Equal(t, account.VerificationPending, a.Verification())
		assert.False(t, a.IsVerified())
		assert.NotEqual(t, "correct horse battery", string(a.PasswordHash()))
		require.NoError(t, a.CheckPassword("correct horse battery"))
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		a, err := account.NewAccount(kernel.NewUUID(), account.RoleCustomer,
			"Pat", "Pat@Example.COM", "", "longenough", nil, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "pat@example.com", a.Email())
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), account.RoleCustomer,
			"Pat", "not-an-email", "", "longenough", nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), account.RoleCustomer,
			"Pat", "pat@example.com", "", "short", nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), account.RoleUnknown,
			"Pat", "pat@example.com", "", "longenough", nil, time.Now())
		require.Error(t, err)
	})
}

func TestAccount_CheckPassword(t *testing.T) {
	a := newVendorAccount(t)

	require.NoError(t, a.CheckPassword("correct horse battery"))
	require.ErrorIs(t, a.CheckPassword("wrong password"), account.ErrPasswordMismatch)
}

func TestAccount_ResetPassword(t *testing.T) {
	a := newVendorAccount(t)

	require.NoError(t, a.ResetPassword("a brand new passphrase"))
	require.NoError(t, a.CheckPassword("a brand new passphrase"))
	require.ErrorIs(t, a.CheckPassword("correct horse battery"), account.ErrPasswordMismatch)
}

func TestAccount_Decide(t *testing.T) {
	t.Run("admin verifies pending account", func(t *testing.T) {
		a := newVendorAccount(t)
		require.NoError(t, a.Decide(account.Verified))
		assert.True(t, a.IsVerified())
	})

	t.Run("admin may overturn a rejection", func(t *testing.T) {
		a := newVendorAccount(t)
		require.NoError(t, a.Decide(account.VerificationRejected))
		require.NoError(t, a.Decide(account.Verified))
		assert.True(t, a.IsVerified())
	})

	t.Run("pending is not a decision outcome", func(t *testing.T) {
		a := newVendorAccount(t)
		require.Error(t, a.Decide(account.VerificationPending))
	})
}

func TestRoleFromString(t *testing.T) {
	for s, want := range map[string]account.Role{
		"customer": account.RoleCustomer,
		"vendor":   account.RoleVendor,
		"courier":  account.RoleCourier,
		"admin":    account.RoleAdmin,
	} {
		got, err := account.RoleFromString(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := account.RoleFromString("superuser")
	require.Error(t, err)
}

func TestRestoreAccount(t *testing.T) {
	a := newVendorAccount(t)

	restored, err := account.RestoreAccount(
		a.ID(), a.Role(), a.Name(), a.Email(), a.Phone(),
		a.PasswordHash(), account.Verified, a.Documents(), a.CreatedAt(),
	)
	require.NoError(t, err)
	assert.True(t, restored.IsVerified())
	require.NoError(t, restored.CheckPassword("correct horse battery"))
}
