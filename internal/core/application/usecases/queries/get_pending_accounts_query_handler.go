package queries

import (
	"context"
	"encoding/json"
	"time"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingAccountsQueryHandler projects the admin review queue of vendor
// and courier applications.
type GetPendingAccountsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingAccountsQueryHandler creates a handler for the review queue.
func NewGetPendingAccountsQueryHandler(db *gorm.DB) GetPendingAccountsQueryHandler {
	return GetPendingAccountsQueryHandler{db: db}
}

// Handle returns all accounts still pending verification, oldest first so
// the queue is worked in arrival order.
func (h GetPendingAccountsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingAccountsQuery,
) ([]PendingAccountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, role, name, email, phone, documents, created_at
		FROM accounts
		WHERE verification = ?
		ORDER BY created_at, id
	`, account.VerificationPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]PendingAccountResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			role      int
			name      string
			email     string
			phone     string
			documents []byte
			createdAt time.Time
		)

		if err = rows.Scan(&id, &role, &name, &email, &phone, &documents, &createdAt); err != nil {
			return nil, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var docs []string
		if len(documents) > 0 {
			if err = json.Unmarshal(documents, &docs); err != nil {
				return nil, err
			}
		}

		accounts = append(accounts, PendingAccountResponse{
			AccountID: accountID,
			Role:      account.Role(role).String(),
			Name:      name,
			Email:     email,
			Phone:     phone,
			Documents: docs,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
