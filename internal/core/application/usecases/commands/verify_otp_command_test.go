package commands_test

import (
	"testing"

	"bottleshop/internal/core/application/usecases/commands"
	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewVerifyOtpCommand(t *testing.T) {
	cmd, err := commands.NewVerifyOtpCommand("user@example.com", "123456", "")
	require.NoError(t, err)
	assert.Equal(t, "123456", cmd.Code())
	assert.Empty(t, cmd.NewPassword())

	_, err = commands.NewVerifyOtpCommand("user@example.com", "", "")
	assert.ErrorIs(t, err, commands.ErrOtpCodeIsRequired)
}

func TestVerifyOtpCommandHandler_Handle_MatchingCode(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewVerifyOtpCommand("user@example.com", "123456", "")

	store := new(MockOtpStore)
	store.On("Consume", mock.Anything, "user@example.com").Return("123456", nil).Once()

	h := commands.NewVerifyOtpCommandHandler(new(MockAccountUoWFactory), store)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestVerifyOtpCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewVerifyOtpCommand("user@example.com", "000000", "")

	store := new(MockOtpStore)
	store.On("Consume", mock.Anything, "user@example.com").Return("123456", nil).Once()

	h := commands.NewVerifyOtpCommandHandler(new(MockAccountUoWFactory), store)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestVerifyOtpCommandHandler_Handle_ExpiredCode(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewVerifyOtpCommand("user@example.com", "123456", "")

	store := new(MockOtpStore)
	store.On("Consume", mock.Anything, "user@example.com").
		Return("", errs.NewObjectNotFoundError("otp", "user@example.com")).Once()

	h := commands.NewVerifyOtpCommandHandler(new(MockAccountUoWFactory), store)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestVerifyOtpCommandHandler_Handle_PasswordReset(t *testing.T) {
	ctx := t.Context()
	acc := verifiedAccount(t, account.RoleCustomer)
	cmd, _ := commands.NewVerifyOtpCommand(acc.Email(), "123456", "fresh-password")

	store := new(MockOtpStore)
	store.On("Consume", mock.Anything, acc.Email()).Return("123456", nil).Once()

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, acc.Email()).Return(acc, nil).Once(),
		repo.On("Update", mock.Anything, acc).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyOtpCommandHandler(factory, store)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, acc.CheckPassword("fresh-password"))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
