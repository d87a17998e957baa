package commands

import (
	"errors"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("name is required")
	ErrStockIsInvalid        = errors.New("stock must not be negative")
)

// CreateProductCommand represents a vendor's request to add a catalog entry.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	imageURL    string
	price       kernel.Money
	stock       int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product to a vendor's
// catalog. Description and imageURL may be empty.
func NewCreateProductCommand(
	productID kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	imageURL string,
	price kernel.Money,
	stock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setVendorID(vendorID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// VendorID returns the owning vendor's identifier.
func (c CreateProductCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// ImageURL returns the product image location.
func (c CreateProductCommand) ImageURL() string {
	return c.imageURL
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the initial stock level.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
