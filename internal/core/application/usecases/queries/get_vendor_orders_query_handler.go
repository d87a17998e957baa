package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVendorOrdersQueryHandler projects a vendor's order book straight from
// storage. One indexed join on the denormalized item vendor column replaces
// any per-order catalog lookups.
type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor order queries.
func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// Handle returns every order containing at least one of the vendor's items,
// newest first, with foreign items filtered out.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(orderItemSelect+`
		WHERE i.vendor_id = ?
		ORDER BY o.placed_at DESC, o.id, i.id
	`, query.VendorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrderRows(rows)
}
