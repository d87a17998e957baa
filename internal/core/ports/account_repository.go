package ports

import (
	"context"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/services"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account aggregate by its email address.
	// The lookup is case-insensitive, emails are stored lowercased.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// GetCourierCandidates retrieves all verified couriers together with
	// the number of items each one currently has in flight.
	// Used by the courier dispatch service to balance load.
	GetCourierCandidates(ctx context.Context) ([]services.CourierCandidate, error)
}
