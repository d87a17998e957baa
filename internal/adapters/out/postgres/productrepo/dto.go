// Package productrepo provides data transfer objects and mapping functions
// for catalog persistence.
package productrepo

import (
	"time"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog entries.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	ImageURL    string
	Price       int64
	Stock       int
	CreatedAt   time.Time
}

// TableName specifies the database table name for catalog entries.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		VendorID:    aggregate.VendorID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		ImageURL:    aggregate.ImageURL(),
		Price:       aggregate.Price().Amount(),
		Stock:       aggregate.Stock(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		vendorID,
		dto.Name,
		dto.Description,
		dto.ImageURL,
		price,
		dto.Stock,
		dto.CreatedAt,
	)
}
