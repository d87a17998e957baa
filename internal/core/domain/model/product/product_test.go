package product_test

import (
	"testing"
	"time"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/product"
	"bottleshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, vendorID kernel.UUID, stock int) *product.Product {
	t.Helper()
	price, err := kernel.NewMoney(1850)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), vendorID,
		"Dry Gin 0.7l", "London dry, 43%", "/uploads/products/gin.png", price, stock, time.Now())
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	vendorID := kernel.NewUUID()

	t.Run("valid product", func(t *testing.T) {
		p := newTestProduct(t, vendorID, 24)
		assert.Equal(t, "Dry Gin 0.7l", p.Name())
		assert.Equal(t, 24, p.Stock())
		require.NoError(t, p.Validate())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		price, _ := kernel.NewMoney(100)
		_, err := product.NewProduct(kernel.NewUUID(), vendorID, "", "", "", price, 1, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		price, _ := kernel.NewMoney(100)
		_, err := product.NewProduct(kernel.NewUUID(), vendorID, "Gin", "", "", price, -1, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProduct_UpdateDetails(t *testing.T) {
	vendorID := kernel.NewUUID()

	t.Run("owning vendor updates fields", func(t *testing.T) {
		p := newTestProduct(t, vendorID, 24)
		price, err := kernel.NewMoney(1999)
		require.NoError(t, err)

		require.NoError(t, p.UpdateDetails(vendorID, "Dry Gin 1l", "bigger bottle", "", price, 12))
		assert.Equal(t, "Dry Gin 1l", p.Name())
		assert.Equal(t, int64(1999), p.Price().Amount())
		// empty imageURL keeps the old image
		assert.Equal(t, "/uploads/products/gin.png", p.ImageURL())
	})

	t.Run("foreign vendor is unauthorized", func(t *testing.T) {
		p := newTestProduct(t, vendorID, 24)
		price, _ := kernel.NewMoney(1999)
		err := p.UpdateDetails(kernel.NewUUID(), "Hijacked", "", "", price, 1)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, "Dry Gin 0.7l", p.Name())
	})
}

func TestProduct_ReserveStock(t *testing.T) {
	vendorID := kernel.NewUUID()

	t.Run("decrements stock", func(t *testing.T) {
		p := newTestProduct(t, vendorID, 5)
		require.NoError(t, p.ReserveStock(3))
		assert.Equal(t, 2, p.Stock())
	})

	t.Run("insufficient stock is a conflict", func(t *testing.T) {
		p := newTestProduct(t, vendorID, 2)
		err := p.ReserveStock(3)
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 2, p.Stock())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, vendorID, 2)
		require.Error(t, p.ReserveStock(0))
	})
}
