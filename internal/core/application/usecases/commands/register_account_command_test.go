package commands_test

import (
	"testing"

	"bottleshop/internal/core/application/usecases/commands"
	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterAccountCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(
		id, account.RoleVendor, "Cask & Co", "shop@example.com",
		"+15550100", "secret-password", []string{"/uploads/licence.pdf"},
	)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.AccountID())
	assert.Equal(t, account.RoleVendor, cmd.Role())
	assert.Equal(t, "shop@example.com", cmd.Email())
	assert.Equal(t, []string{"/uploads/licence.pdf"}, cmd.Documents())
}

func TestNewRegisterAccountCommand_MissingFields(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewRegisterAccountCommand(id, account.RoleVendor, "", "shop@example.com", "", "pw", nil)
	assert.ErrorIs(t, err, commands.ErrAccountNameIsRequired)

	_, err = commands.NewRegisterAccountCommand(id, account.RoleVendor, "Cask & Co", "", "", "pw", nil)
	assert.ErrorIs(t, err, commands.ErrEmailIsRequired)

	_, err = commands.NewRegisterAccountCommand(id, account.RoleVendor, "Cask & Co", "shop@example.com", "", "", nil)
	assert.ErrorIs(t, err, commands.ErrPasswordIsRequired)

	_, err = commands.NewRegisterAccountCommand(kernel.UUID{}, account.RoleVendor, "Cask & Co", "shop@example.com", "", "pw", nil)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRegisterAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterAccountCommand(
		kernel.NewUUID(), account.RoleCustomer, "Ann", "ann@example.com",
		"+15550100", "secret-password", nil,
	)

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ann@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "ann@example.com")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAccountCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterAccountCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterAccountCommand(
		kernel.NewUUID(), account.RoleCustomer, "Ann", "user@example.com",
		"+15550100", "secret-password", nil,
	)

	existing := verifiedAccount(t, account.RoleCustomer)
	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAccountCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestRegisterAccountCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockAccountUoWFactory)
	h := commands.NewRegisterAccountCommandHandler(factory)
	err := h.Handle(t.Context(), commands.RegisterAccountCommand{})
	require.Error(t, err)
}
