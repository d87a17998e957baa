package commands

import (
	"errors"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/order"
	"bottleshop/internal/pkg/guard"
)

var (
	ErrUpdatePaymentCommandIsNotConstructed = errors.New(
		"UpdatePaymentCommand must be created via NewUpdatePaymentCommand constructor",
	)
	ErrPaymentOutcomeIsInvalid = errors.New("payment outcome must be paid or cash on delivery")
)

// UpdatePaymentCommand represents a customer settling payment on an order,
// either with an online payment proof or by choosing cash on delivery.
type UpdatePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	outcome       order.PaymentStatus
	paymentProof  string
	transactionID string

	guard guard.ConstructorGuard
}

// NewUpdatePaymentCommand creates a command to settle an order's payment.
// Proof and transaction ID may be empty for cash on delivery.
func NewUpdatePaymentCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	outcome order.PaymentStatus,
	paymentProof string,
	transactionID string,
) (UpdatePaymentCommand, error) {
	cmd := UpdatePaymentCommand{
		paymentProof:  paymentProof,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setOutcome(outcome),
	); err != nil {
		return UpdatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentCommandIsNotConstructed)
}

// OrderID returns the order being settled.
func (c UpdatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the paying customer's identifier.
func (c UpdatePaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Outcome returns the settled payment state.
func (c UpdatePaymentCommand) Outcome() order.PaymentStatus {
	return c.outcome
}

// PaymentProof returns the uploaded proof location, empty for cash on delivery.
func (c UpdatePaymentCommand) PaymentProof() string {
	return c.paymentProof
}

// TransactionID returns the payment gateway reference, empty for cash on delivery.
func (c UpdatePaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c *UpdatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdatePaymentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdatePaymentCommand) setOutcome(outcome order.PaymentStatus) error {
	if outcome != order.PaymentPaid && outcome != order.PaymentCashOnDelivery {
		return ErrPaymentOutcomeIsInvalid
	}

	c.outcome = outcome
	return nil
}
