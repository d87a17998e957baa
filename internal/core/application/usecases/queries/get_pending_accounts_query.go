package queries

import (
	"errors"
	"time"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/guard"
)

var ErrGetPendingAccountsQueryIsNotConstructed = errors.New(
	"GetPendingAccountsQuery must be created via NewGetPendingAccountsQuery constructor",
)

// GetPendingAccountsQuery retrieves accounts awaiting admin verification.
type GetPendingAccountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingAccountsQuery creates a query for the admin review queue.
// This is a parameterless query that fetches all pending accounts.
func NewGetPendingAccountsQuery() GetPendingAccountsQuery {
	return GetPendingAccountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingAccountsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingAccountsQueryIsNotConstructed)
}

// PendingAccountResponse is one account awaiting verification, with the
// documents the applicant uploaded.
type PendingAccountResponse struct {
	AccountID kernel.UUID
	Role      string
	Name      string
	Email     string
	Phone     string
	Documents []string
	CreatedAt time.Time
}
