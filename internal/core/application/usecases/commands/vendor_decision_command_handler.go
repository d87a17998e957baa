package commands

import (
	"context"
)

// VendorDecisionCommandHandler applies a vendor's accept or reject decision
// to one item. Only that item's row is written back, so vendors working on
// different items of the same order never overwrite each other.
type VendorDecisionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVendorDecisionCommandHandler creates a handler for vendor decisions.
func NewVendorDecisionCommandHandler(uowFactory OrderUoWFactory) VendorDecisionCommandHandler {
	return VendorDecisionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor decision.
// The item aggregate enforces ownership and the handover freeze.
func (h *VendorDecisionCommandHandler) Handle(ctx context.Context, cmd VendorDecisionCommand) error {
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
		err = item.AcceptByVendor(cmd.VendorID())
	case DecisionReject:
		err = item.RejectByVendor(cmd.VendorID())
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
