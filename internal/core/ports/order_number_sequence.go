package ports

import "context"

// OrderNumberSequence hands out monotonically increasing order sequence
// numbers. Next never returns the same value twice, even under concurrent
// order placement, so order numbers are collision free.
type OrderNumberSequence interface {
	Next(ctx context.Context) (int64, error)
}
