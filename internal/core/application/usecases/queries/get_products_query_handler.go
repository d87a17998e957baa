package queries

import (
	"context"
	"time"

	"bottleshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler projects the product catalog.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle returns catalog entries, newest first, honoring the optional
// vendor filter.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, vendor_id, name, description, image_url, price, stock, created_at
		FROM products
	`
	args := make([]any, 0, 1)
	if query.VendorID() != nil {
		sql += " WHERE vendor_id = ?"
		args = append(args, query.VendorID().Bytes())
	}
	sql += " ORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			vendorID    uuid.UUID
			name        string
			description string
			imageURL    string
			price       int64
			stock       int
			createdAt   time.Time
		)

		if err = rows.Scan(&id, &vendorID, &name, &description, &imageURL, &price, &stock, &createdAt); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(vendorID[:])
		if idErr != nil {
			return nil, idErr
		}

		products = append(products, ProductResponse{
			ProductID:   productID,
			VendorID:    ownerID,
			Name:        name,
			Description: description,
			ImageURL:    imageURL,
			Price:       price,
			Stock:       stock,
			CreatedAt:   createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
