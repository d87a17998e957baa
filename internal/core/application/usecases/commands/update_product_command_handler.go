package commands

import (
	"context"
)

// UpdateProductCommandHandler handles catalog entry updates.
// Ownership is enforced by the product aggregate itself.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	prd, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = prd.UpdateDetails(
		cmd.VendorID(),
		cmd.Name(),
		cmd.Description(),
		cmd.ImageURL(),
		cmd.Price(),
		cmd.Stock(),
	); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, prd); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
