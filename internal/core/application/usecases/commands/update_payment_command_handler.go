package commands

import (
	"context"
)

// UpdatePaymentCommandHandler settles an order's payment exactly once.
// The repository writes the payment conditionally on it still being
// pending, so two concurrent settlements cannot both succeed.
type UpdatePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdatePaymentCommandHandler creates a handler for payment settlement.
func NewUpdatePaymentCommandHandler(uowFactory OrderUoWFactory) UpdatePaymentCommandHandler {
	return UpdatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment settlement command.
func (h *UpdatePaymentCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetPayment(
		cmd.CustomerID(),
		cmd.Outcome(),
		cmd.PaymentProof(),
		cmd.TransactionID(),
	); err != nil {
		return err
	}

	if err = orderRepo.UpdatePayment(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
