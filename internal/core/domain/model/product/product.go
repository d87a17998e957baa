package product

import (
	"errors"
	"fmt"
	"time"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrNameIsRequired is returned when creating a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product is a vendor-owned catalog entry. The owning vendor is the join key
// that scopes orders, projections, and catalog mutations to one vendor.
//
// Invariants:
//   - identifier and owning vendor are immutable
//   - name is non-empty, price is a valid Money, stock is non-negative
//   - only the owning vendor may change details or stock
type Product struct {
	// id uniquely identifies the catalog entry
	id kernel.UUID
	// vendorID is the owning vendor, immutable after creation
	vendorID kernel.UUID
	// name is the display name
	name string
	// description is free-form display text, possibly empty
	description string
	// imageURL points at the uploaded product image, possibly empty
	imageURL string
	// price is the unit price
	price kernel.Money
	// stock is the available unit count
	stock int
	// createdAt is the catalog entry creation timestamp
	createdAt time.Time

	isConstructed bool
}

// NewProduct creates a catalog entry for a vendor.
func NewProduct(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	imageURL string,
	price kernel.Money,
	stock int,
	createdAt time.Time,
) (*Product, error) {
	p := &Product{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setVendorID(vendorID),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.imageURL = imageURL
	return p, nil
}

// RestoreProduct reconstructs a catalog entry from persistence.
func RestoreProduct(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	imageURL string,
	price kernel.Money,
	stock int,
	createdAt time.Time,
) (*Product, error) {
	return NewProduct(id, vendorID, name, description, imageURL, price, stock, createdAt)
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the catalog entry's identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// VendorID returns the owning vendor's identifier.
func (p *Product) VendorID() kernel.UUID {
	return p.vendorID
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the display text, possibly empty.
func (p *Product) Description() string {
	return p.description
}

// ImageURL returns the product image URL, possibly empty.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// Price returns the unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the available unit count.
func (p *Product) Stock() int {
	return p.stock
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdateDetails changes the mutable catalog fields. The caller must be the
// owning vendor. An empty imageURL keeps the current image.
func (p *Product) UpdateDetails(
	vendorID kernel.UUID,
	name string,
	description string,
	imageURL string,
	price kernel.Money,
	stock int,
) error {
	if err := p.authorizeVendor(vendorID); err != nil {
		return err
	}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return err
	}

	p.description = description
	if imageURL != "" {
		p.imageURL = imageURL
	}
	return nil
}

// ReserveStock decrements stock for an order placement.
func (p *Product) ReserveStock(quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > p.stock {
		return errs.NewConflictErrorWithCause("stock",
			fmt.Errorf("requested %d of %q, only %d in stock", quantity, p.name, p.stock))
	}

	p.stock -= quantity
	return nil
}

func (p *Product) authorizeVendor(vendorID kernel.UUID) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := vendorID.Validate(); err != nil {
		return err
	}

	if !p.vendorID.IsEqual(vendorID) {
		return errs.NewUnauthorizedErrorWithCause("vendor",
			fmt.Errorf("product %s does not belong to vendor %s", p.id, vendorID))
	}
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	p.vendorID = vendorID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
