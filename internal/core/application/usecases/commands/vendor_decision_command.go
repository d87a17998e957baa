package commands

import (
	"errors"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/guard"
)

var ErrVendorDecisionCommandIsNotConstructed = errors.New(
	"VendorDecisionCommand must be created via NewVendorDecisionCommand constructor",
)

// VendorDecisionCommand represents a vendor accepting or rejecting one line
// item of an order. Other items of the same order are unaffected.
type VendorDecisionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	vendorID kernel.UUID
	decision Decision

	guard guard.ConstructorGuard
}

// NewVendorDecisionCommand creates a command carrying a vendor's decision on
// a single item.
func NewVendorDecisionCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	vendorID kernel.UUID,
	decision Decision,
) (VendorDecisionCommand, error) {
	cmd := VendorDecisionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setVendorID(vendorID),
		cmd.setDecision(decision),
	); err != nil {
		return VendorDecisionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VendorDecisionCommand) Validate() error {
	return c.guard.Validate(ErrVendorDecisionCommandIsNotConstructed)
}

// OrderID returns the order containing the item.
func (c VendorDecisionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the item being decided on.
func (c VendorDecisionCommand) ItemID() kernel.UUID {
	return c.itemID
}

// VendorID returns the deciding vendor's identifier.
func (c VendorDecisionCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Decision returns the accept-or-reject choice.
func (c VendorDecisionCommand) Decision() Decision {
	return c.decision
}

func (c *VendorDecisionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VendorDecisionCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *VendorDecisionCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *VendorDecisionCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
