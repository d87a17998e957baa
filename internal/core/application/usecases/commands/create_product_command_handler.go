package commands

import (
	"context"
	"time"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/product"
	"bottleshop/internal/pkg/errs"
)

// CreateProductCommandHandler handles catalog entry creation.
// Only verified vendors can list products.
type CreateProductCommandHandler struct {
	uowFactory ProductAccountUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductAccountUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	vendor, err := uow.AccountRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}
	if vendor.Role() != account.RoleVendor || !vendor.IsVerified() {
		return errs.NewUnauthorizedError("only verified vendors can list products")
	}

	prd, err := product.NewProduct(
		cmd.ProductID(),
		cmd.VendorID(),
		cmd.Name(),
		cmd.Description(),
		cmd.ImageURL(),
		cmd.Price(),
		cmd.Stock(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, prd); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
