package commands

import (
	"bottleshop/internal/pkg/errs"
)

// Decision is an accept-or-reject choice carried by vendor and courier
// item commands.
type Decision int

const (
	DecisionUnknown Decision = iota
	DecisionAccept
	DecisionReject
)

// DecisionFromString parses the wire form of a decision.
func DecisionFromString(s string) (Decision, error) {
	switch s {
	case "accept":
		return DecisionAccept, nil
	case "reject":
		return DecisionReject, nil
	default:
		return DecisionUnknown, errs.NewValueIsInvalidError("decision")
	}
}

// Validate checks the decision holds one of the two allowed choices.
func (d Decision) Validate() error {
	if d != DecisionAccept && d != DecisionReject {
		return errs.NewValueIsInvalidError("decision")
	}
	return nil
}
