package commands

import (
	"errors"

	"bottleshop/internal/pkg/guard"
)

// AssignCouriersCommand triggers assignment of free couriers to all items
// awaiting delivery. This batch operation is run periodically by the
// dispatch job.
type AssignCouriersCommand struct {
	guard guard.ConstructorGuard
}

var ErrAssignCouriersCommandIsNotConstructed = errors.New(
	"AssignCouriersCommand must be created via NewAssignCouriersCommand constructor",
)

// NewAssignCouriersCommand creates a command to trigger courier assignment.
// This is a parameterless command that processes all waiting items.
func NewAssignCouriersCommand() AssignCouriersCommand {
	command := AssignCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCouriersCommandIsNotConstructed if validation fails.
func (c *AssignCouriersCommand) Validate() error {
	return c.guard.Validate(ErrAssignCouriersCommandIsNotConstructed)
}
