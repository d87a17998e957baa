package commands

import (
	"errors"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/guard"
)

var ErrCourierDecisionCommandIsNotConstructed = errors.New(
	"CourierDecisionCommand must be created via NewCourierDecisionCommand constructor",
)

// CourierDecisionCommand represents a courier accepting or rejecting a
// delivery assignment on one item.
type CourierDecisionCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	courierID kernel.UUID
	decision  Decision

	guard guard.ConstructorGuard
}

// NewCourierDecisionCommand creates a command carrying a courier's decision
// on an assigned item.
func NewCourierDecisionCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	courierID kernel.UUID,
	decision Decision,
) (CourierDecisionCommand, error) {
	cmd := CourierDecisionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setCourierID(courierID),
		cmd.setDecision(decision),
	); err != nil {
		return CourierDecisionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CourierDecisionCommand) Validate() error {
	return c.guard.Validate(ErrCourierDecisionCommandIsNotConstructed)
}

// OrderID returns the order containing the item.
func (c CourierDecisionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the item being decided on.
func (c CourierDecisionCommand) ItemID() kernel.UUID {
	return c.itemID
}

// CourierID returns the deciding courier's identifier.
func (c CourierDecisionCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Decision returns the accept-or-reject choice.
func (c CourierDecisionCommand) Decision() Decision {
	return c.decision
}

func (c *CourierDecisionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CourierDecisionCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CourierDecisionCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CourierDecisionCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
