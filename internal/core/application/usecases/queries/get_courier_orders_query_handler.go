package queries

import (
	"context"

	"bottleshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler projects a courier's delivery list. Only
// handed-over items assigned to the courier appear; the shipping address and
// payment state travel along so cash on delivery is visible.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier order queries.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle returns the courier's assigned items grouped by order, newest first.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderItemSelect+`
		WHERE i.courier_id = ? AND i.handover_status = ?
		ORDER BY o.placed_at DESC, o.id, i.id
	`, query.CourierID().Bytes(), order.HandedOver).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrderRows(rows)
}
