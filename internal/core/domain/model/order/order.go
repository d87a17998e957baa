package order

import (
	"errors"
	"time"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order must contain at least one item")
)

// Order is the aggregate root for a customer purchase. It holds the order
// number, the owning customer, the line items with their fulfillment state,
// the shipping address snapshot, and the payment fields.
//
// Invariants:
//   - the identifier, number, customer, and address are immutable after
//     placement
//   - at least one line item
//   - payment details are recorded exactly once
//   - per-item transitions are enforced by Item (see package doc)
type Order struct {
	// id is the aggregate identifier
	id kernel.UUID

	// number is the human-readable "ORD<N>" identifier
	number Number

	// customerID is the owning customer, immutable after creation
	customerID kernel.UUID

	// items are the order's line items
	items []*Item

	// address is the shipping snapshot taken at placement
	address Address

	// payment fields, settable exactly once via SetPayment
	paymentStatus PaymentStatus
	paymentProof  string
	transactionID string

	// placedAt is the placement timestamp
	placedAt time.Time

	isConstructed bool
}

// NewOrder creates an order at placement time: payment pending, every item in
// its initial state. The item list must be non-empty.
func NewOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	address Address,
	items []*Item,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		paymentStatus: PaymentPending,
		placedAt:      placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including payment
// state and already restored line items.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	address Address,
	items []*Item,
	paymentStatus PaymentStatus,
	paymentProof string,
	transactionID string,
	placedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, customerID, address, items, placedAt)
	if err != nil {
		return nil, err
	}

	if err = paymentStatus.Validate(); err != nil {
		return nil, err
	}

	o.paymentStatus = paymentStatus
	o.paymentProof = paymentProof
	o.transactionID = transactionID
	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the aggregate identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() Number {
	return o.number
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Item locates a line item by its identifier.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("item", itemID.String())
}

// Address returns the shipping snapshot.
func (o *Order) Address() Address {
	return o.address
}

// PaymentStatus returns the order's payment state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentProof returns the uploaded payment proof URL, possibly empty.
func (o *Order) PaymentProof() string {
	return o.paymentProof
}

// TransactionID returns the recorded transaction reference, possibly empty.
func (o *Order) TransactionID() string {
	return o.transactionID
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Total sums price×quantity over all line items.
func (o *Order) Total() (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	var total kernel.Money
	for idx, item := range o.items {
		line, err := item.Price().Multiply(item.Quantity())
		if err != nil {
			return kernel.Money{}, err
		}
		if idx == 0 {
			total = line
			continue
		}
		total, err = total.Add(line)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// SetPayment records the payment outcome exactly once. The caller must be the
// owning customer. A second call is a conflict regardless of the outcome.
func (o *Order) SetPayment(
	customerID kernel.UUID,
	outcome PaymentStatus,
	paymentProof string,
	transactionID string,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := customerID.Validate(); err != nil {
		return err
	}

	if !o.customerID.IsEqual(customerID) {
		return errs.NewUnauthorizedError("order does not belong to this customer")
	}

	newStatus, err := o.paymentStatus.Settle(outcome)
	if err != nil {
		return err
	}

	o.paymentStatus = newStatus
	o.paymentProof = paymentProof
	o.transactionID = transactionID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
