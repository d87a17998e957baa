package commands

import (
	"context"
	"time"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/order"
	"bottleshop/internal/core/ports"
)

// PlaceOrderCommandHandler handles order placement. Stock is reserved and
// product details are snapshotted into line items inside one transaction, so
// later catalog edits never change an already placed order.
type PlaceOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
	sequence   ports.OrderNumberSequence
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// The sequence supplies collision free order numbers.
func NewPlaceOrderCommandHandler(
	uowFactory OrderProductUoWFactory,
	sequence ports.OrderNumberSequence,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		sequence:   sequence,
	}
}

// Handle processes the placement command. Each line reserves stock on its
// product and becomes an item carrying the product's vendor, name, image and
// price as of placement time. Payment starts pending.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	address, err := order.NewAddress(cmd.Street(), cmd.City(), cmd.Postcode(), cmd.Phone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	items := make([]*order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		prd, prdErr := productRepo.Get(ctx, line.ProductID)
		if prdErr != nil {
			return prdErr
		}

		if prdErr = prd.ReserveStock(line.Quantity); prdErr != nil {
			return prdErr
		}

		if prdErr = productRepo.Update(ctx, prd); prdErr != nil {
			return prdErr
		}

		item, prdErr := order.NewItem(
			kernel.NewUUID(),
			prd.ID(),
			prd.VendorID(),
			prd.Name(),
			prd.ImageURL(),
			prd.Price(),
			line.Quantity,
		)
		if prdErr != nil {
			return prdErr
		}

		items = append(items, item)
	}

	seq, err := h.sequence.Next(ctx)
	if err != nil {
		return err
	}

	number, err := order.NewNumber(seq)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.CustomerID(),
		address,
		items,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
