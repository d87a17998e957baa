package orderrepo

import (
	"context"
	"errors"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/order"
	"bottleshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type orderIDRow struct {
	ID uuid.UUID
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and all of its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateItem writes back the current state of a single item row. Only the
// columns item mutations can change are written, and only for that row, so
// concurrent updates to sibling items of the same order never collide.
//
// A delivered item is written conditionally on the row still holding an
// accepted courier, mirroring the aggregate's precondition at the storage
// level. Zero matched rows is a conflict.
func (r *GormOrderRepository) UpdateItem(ctx context.Context, aggregate *order.Order, itemID kernel.UUID) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	item, err := aggregate.Item(itemID)
	if err != nil {
		return err
	}

	dto := itemFromDomain(aggregate.ID(), item)
	tx := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ? AND order_id = ?", dto.ID, dto.OrderID)
	if item.DeliveryStatus() == order.Delivered {
		tx = tx.Where("courier_status = ?", int(order.CourierAccepted))
	}

	result := tx.Updates(map[string]any{
		"courier_id":      dto.CourierID,
		"vendor_status":   dto.VendorStatus,
		"handover_status": dto.HandoverStatus,
		"courier_status":  dto.CourierStatus,
		"delivery_status": dto.DeliveryStatus,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("item row was changed concurrently")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdatePayment writes the order's payment fields conditionally on the
// payment still being pending in storage. Zero matched rows means another
// settlement already won, which is a conflict.
func (r *GormOrderRepository) UpdatePayment(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND payment_status = ?", dto.ID, int(order.PaymentPending)).
		Updates(map[string]any{
			"payment_status": dto.PaymentStatus,
			"payment_proof":  dto.PaymentProof,
			"transaction_id": dto.TransactionID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("payment is already settled")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllAwaitingCourier retrieves orders with at least one handed-over,
// undelivered item that has no courier yet or was rejected by its courier.
func (r *GormOrderRepository) GetAllAwaitingCourier(ctx context.Context) ([]*order.Order, error) {
	var ids []orderIDRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT o.id
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		WHERE i.handover_status = ?
		  AND i.delivery_status = ?
		  AND (i.courier_id IS NULL OR i.courier_status = ?)
	`, int(order.HandedOver), int(order.DeliveryPending), int(order.CourierRejected)).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		var dto OrderDTO
		if err = r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.ID).Error; err != nil {
			return nil, err
		}

		aggregate, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
