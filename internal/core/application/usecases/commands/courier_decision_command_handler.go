package commands

import (
	"context"
)

// CourierDecisionCommandHandler applies a courier's accept or reject decision
// to an assigned item. A rejected item becomes eligible for reassignment by
// the dispatch job.
type CourierDecisionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCourierDecisionCommandHandler creates a handler for courier decisions.
func NewCourierDecisionCommandHandler(uowFactory OrderUoWFactory) CourierDecisionCommandHandler {
	return CourierDecisionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier decision.
// The item aggregate enforces that the caller is the assigned courier.
func (h *CourierDecisionCommandHandler) Handle(ctx context.Context, cmd CourierDecisionCommand) error {
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

	item, err := aggregate.Item(cmd.ItemID())
	if err != nil {
		return err
	}

	switch cmd.Decision() {
	case DecisionAccept:
		err = item.AcceptByCourier(cmd.CourierID())
	case DecisionReject:
		err = item.RejectByCourier(cmd.CourierID())
	default:
		err = cmd.Decision().Validate()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateItem(ctx, aggregate, cmd.ItemID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
