package order

import (
	"fmt"
	"strconv"
	"strings"

	"bottleshop/internal/pkg/errs"
)

// orderNumberPrefix is the human-readable prefix of every order number.
const orderNumberPrefix = "ORD"

// Number is the human-readable order identifier, formatted as "ORD<N>" where
// N comes from an atomic, monotonically increasing counter. Numbers are
// assigned once at placement and never change.
type Number struct {
	value string
}

// NewNumber formats a counter value into an order number. The counter value
// must be positive; uniqueness is the counter's responsibility.
func NewNumber(sequence int64) (Number, error) {
	if sequence <= 0 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%d is not a valid sequence value", sequence))
	}
	return Number{value: fmt.Sprintf("%s%d", orderNumberPrefix, sequence)}, nil
}

// NumberFromString parses a persisted order number.
func NumberFromString(s string) (Number, error) {
	raw, ok := strings.CutPrefix(s, orderNumberPrefix)
	if !ok {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q does not start with %s", s, orderNumberPrefix))
	}

	sequence, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}

	return NewNumber(sequence)
}

// String returns the "ORD<N>" form.
func (n Number) String() string {
	return n.value
}

// IsEqual reports whether two numbers carry the same value.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

// Validate returns an error for a zero-value Number.
func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order number must be created via NewNumber")
	}
	return nil
}
