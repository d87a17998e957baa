package commands

import (
	"errors"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("order must contain at least one line")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// OrderLine is one requested product and quantity within a placement request.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand represents a customer's request to place an order.
// Product details are snapshotted into line items at handling time.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	lines      []OrderLine
	street     string
	city       string
	postcode   string
	phone      string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Requires a non-empty line list with valid product IDs and positive
// quantities. Address validation happens in the order aggregate.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	lines []OrderLine,
	street string,
	city string,
	postcode string,
	phone string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		street:   street,
		city:     city,
		postcode: postcode,
		phone:    phone,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the requested products and quantities.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// Street returns the shipping street address.
func (c PlaceOrderCommand) Street() string {
	return c.street
}

// City returns the shipping city.
func (c PlaceOrderCommand) City() string {
	return c.city
}

// Postcode returns the shipping postcode.
func (c PlaceOrderCommand) Postcode() string {
	return c.postcode
}

// Phone returns the shipping contact phone.
func (c PlaceOrderCommand) Phone() string {
	return c.phone
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}
