package commands_test

import (
	"testing"

	"bottleshop/internal/core/application/usecases/commands"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/order"
	"bottleshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdatePaymentCommand(t *testing.T) {
	cmd, err := commands.NewUpdatePaymentCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.PaymentPaid, "/uploads/proof.png", "txn-1",
	)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentPaid, cmd.Outcome())
	assert.Equal(t, "txn-1", cmd.TransactionID())

	_, err = commands.NewUpdatePaymentCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.PaymentPending, "", "",
	)
	assert.ErrorIs(t, err, commands.ErrPaymentOutcomeIsInvalid)
}

func TestUpdatePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := placedOrder(t, customerID, pendingItem(t, kernel.NewUUID()))
	cmd, _ := commands.NewUpdatePaymentCommand(
		aggregate.ID(), customerID, order.PaymentPaid, "/uploads/proof.png", "txn-1",
	)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("UpdatePayment", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePaymentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentPaid, aggregate.PaymentStatus())
	assert.Equal(t, "txn-1", aggregate.TransactionID())
	repo.AssertExpectations(t)
}

func TestUpdatePaymentCommandHandler_Handle_SecondSettlementConflicts(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := placedOrder(t, customerID, pendingItem(t, kernel.NewUUID()))
	require.NoError(t, aggregate.SetPayment(customerID, order.PaymentCashOnDelivery, "", ""))
	cmd, _ := commands.NewUpdatePaymentCommand(
		aggregate.ID(), customerID, order.PaymentPaid, "/uploads/proof.png", "txn-1",
	)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePaymentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestUpdatePaymentCommandHandler_Handle_ForeignCustomer(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t, kernel.NewUUID(), pendingItem(t, kernel.NewUUID()))
	cmd, _ := commands.NewUpdatePaymentCommand(
		aggregate.ID(), kernel.NewUUID(), order.PaymentPaid, "", "txn-1",
	)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePaymentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}
