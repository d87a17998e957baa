package commands

import (
	"errors"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a vendor's request to change a catalog
// entry. An empty imageURL keeps the current image.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	imageURL    string
	price       kernel.Money
	stock       int

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog entry.
func NewUpdateProductCommand(
	productID kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	imageURL string,
	price kernel.Money,
	stock int,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
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
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being updated.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// VendorID returns the calling vendor's identifier.
func (c UpdateProductCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new product description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// ImageURL returns the new image location, empty to keep the current one.
func (c UpdateProductCommand) ImageURL() string {
	return c.imageURL
}

// Price returns the new unit price.
func (c UpdateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the new stock level.
func (c UpdateProductCommand) Stock() int {
	return c.stock
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
