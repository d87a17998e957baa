package ports

import (
	"context"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Item-level changes are persisted per row so that vendors and couriers
// working on different items of the same order never overwrite each other.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all items and their current statuses.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateItem persists the current state of a single item of the order.
	// Only the row belonging to itemID is written, other items are untouched.
	UpdateItem(ctx context.Context, aggregate *order.Order, itemID kernel.UUID) error

	// UpdatePayment persists the order's payment fields. The write is
	// conditional on the payment still being unsettled in storage, so two
	// concurrent settlements cannot both succeed.
	UpdatePayment(ctx context.Context, aggregate *order.Order) error

	// GetAllAwaitingCourier retrieves orders that have at least one item
	// handed over by its vendor but without an accepted courier.
	// Used by the courier assignment workflow.
	GetAllAwaitingCourier(ctx context.Context) ([]*order.Order, error)
}
