package queries

import (
	"errors"
	"time"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves catalog entries, optionally limited to one
// vendor's listings.
type GetProductsQuery struct {
	vendorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query over the whole catalog.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetVendorProductsQuery creates a query limited to one vendor's catalog.
func NewGetVendorProductsQuery(vendorID kernel.UUID) (GetProductsQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetProductsQuery{}, err
	}

	return GetProductsQuery{
		vendorID: &vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// VendorID returns the vendor filter, nil for the whole catalog.
func (q GetProductsQuery) VendorID() *kernel.UUID {
	return q.vendorID
}

// ProductResponse is one projected catalog entry.
type ProductResponse struct {
	ProductID   kernel.UUID
	VendorID    kernel.UUID
	Name        string
	Description string
	ImageURL    string
	Price       int64
	Stock       int
	CreatedAt   time.Time
}
