package commands

import (
	"errors"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/guard"
)

var ErrHandOverItemCommandIsNotConstructed = errors.New(
	"HandOverItemCommand must be created via NewHandOverItemCommand constructor",
)

// HandOverItemCommand represents a vendor marking an accepted item as handed
// over for delivery.
type HandOverItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHandOverItemCommand creates a command to hand an item over for delivery.
func NewHandOverItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	vendorID kernel.UUID,
) (HandOverItemCommand, error) {
	cmd := HandOverItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setVendorID(vendorID),
	); err != nil {
		return HandOverItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HandOverItemCommand) Validate() error {
	return c.guard.Validate(ErrHandOverItemCommandIsNotConstructed)
}

// OrderID returns the order containing the item.
func (c HandOverItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the item being handed over.
func (c HandOverItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// VendorID returns the handing-over vendor's identifier.
func (c HandOverItemCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c *HandOverItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *HandOverItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *HandOverItemCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}
