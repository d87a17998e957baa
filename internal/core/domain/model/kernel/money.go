package kernel

import (
	"fmt"

	"bottleshop/internal/pkg/errs"
)

// maxMoneyAmount caps a single money value at ten million minor units.
// Nothing in the catalog comes anywhere near it; the cap catches
// sign-flipped and garbage inputs early.
const maxMoneyAmount int64 = 10_000_000_00

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money
// that was not created through NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney")

// Money is a value object holding a positive amount in minor currency units
// (cents). It is used for product prices and order line items.
//
// The zero value is invalid; use NewMoney. Money is immutable.
type Money struct {
	amount        int64
	isConstructed bool
}

// NewMoney creates a Money value. The amount must be positive and below the
// internal cap.
func NewMoney(amount int64) (Money, error) {
	if amount <= 0 || amount > maxMoneyAmount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 1, maxMoneyAmount)
	}
	return Money{amount: amount, isConstructed: true}, nil
}

// Amount returns the value in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Multiply scales the amount by a positive quantity, e.g. when pricing an
// order line item.
func (m Money) Multiply(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return NewMoney(m.amount * int64(quantity))
}

// Add sums two money values.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount + other.amount)
}

// IsEqual reports whether two money values carry the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
