package accountrepo

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/order"
	"bottleshop/internal/core/domain/services"
	"bottleshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account to the database.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by email. Emails are stored lowercased, so
// the lookup lowercases its input as well.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetCourierCandidates retrieves all verified couriers with the number of
// items each one currently has in flight. An item counts as in flight once
// handed over until it is delivered, unless the courier rejected it.
func (r *GormAccountRepository) GetCourierCandidates(ctx context.Context) ([]services.CourierCandidate, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			a.id, a.role, a.name, a.email, a.phone, a.password_hash,
			a.verification, a.documents, a.created_at,
			COUNT(i.id) AS active_items
		FROM accounts a
		LEFT JOIN order_items i
			ON i.courier_id = a.id
			AND i.handover_status = ?
			AND i.delivery_status = ?
			AND i.courier_status IN (?, ?)
		WHERE a.role = ? AND a.verification = ?
		GROUP BY a.id
		ORDER BY a.id
	`,
		int(order.HandedOver), int(order.DeliveryPending),
		int(order.CourierPending), int(order.CourierAccepted),
		int(account.RoleCourier), int(account.Verified),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]services.CourierCandidate, 0)
	for rows.Next() {
		var (
			dto         AccountDTO
			id          uuid.UUID
			documents   []byte
			createdAt   time.Time
			activeItems int
		)

		if err = rows.Scan(
			&id, &dto.Role, &dto.Name, &dto.Email, &dto.Phone, &dto.PasswordHash,
			&dto.Verification, &documents, &createdAt, &activeItems,
		); err != nil {
			return nil, err
		}

		dto.ID = id
		dto.CreatedAt = createdAt
		if len(documents) > 0 {
			if err = json.Unmarshal(documents, &dto.Documents); err != nil {
				return nil, err
			}
		}

		courier, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}

		candidates = append(candidates, services.CourierCandidate{
			Courier:     courier,
			ActiveItems: activeItems,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
