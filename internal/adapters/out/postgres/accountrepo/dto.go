// Package accountrepo provides data transfer objects and mapping functions
// for account persistence. Verification document paths are stored as a JSON
// array in a single column.
package accountrepo

import (
	"time"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role         int       `gorm:"index"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	PasswordHash []byte
	Verification int      `gorm:"index"`
	Documents    []string `gorm:"serializer:json"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Role:         int(aggregate.Role()),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		PasswordHash: aggregate.PasswordHash(),
		Verification: int(aggregate.Verification()),
		Documents:    aggregate.Documents(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		account.Role(dto.Role),
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.PasswordHash,
		account.Verification(dto.Verification),
		dto.Documents,
		dto.CreatedAt,
	)
}
