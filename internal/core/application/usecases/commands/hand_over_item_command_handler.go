package commands

import (
	"context"
)

// HandOverItemCommandHandler marks an item as handed over for delivery.
// The item must already be accepted by its vendor.
type HandOverItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewHandOverItemCommandHandler creates a handler for item handover.
func NewHandOverItemCommandHandler(uowFactory OrderUoWFactory) HandOverItemCommandHandler {
	return HandOverItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the handover command.
func (h *HandOverItemCommandHandler) Handle(ctx context.Context, cmd HandOverItemCommand) error {
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

	if err = item.HandOver(cmd.VendorID()); err != nil {
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
