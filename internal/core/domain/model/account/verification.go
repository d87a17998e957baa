package account

import (
	"fmt"

	"bottleshop/internal/pkg/errs"
)

// Verification is the back-office review state of an account.
//
// State transitions:
//
//	VerificationPending ──┬──> Verified
//	                      │       ^
//	                      │       │ (admin may overturn)
//	                      └──> VerificationRejected
//
// Only an admin command moves an account out of pending, and an admin may
// later overturn a decision in either direction.
type Verification int

const (
	// VerificationUnknown represents an invalid or undefined state.
	VerificationUnknown Verification = iota

	// VerificationPending is the initial state after registration.
	VerificationPending

	// Verified indicates the account passed document review.
	Verified

	// VerificationRejected indicates the account failed document review.
	VerificationRejected
)

func verificationStrings() map[Verification]string {
	return map[Verification]string{
		VerificationUnknown:  "Unknown",
		VerificationPending:  "Pending",
		Verified:             "Verified",
		VerificationRejected: "Rejected",
	}
}

// Validate checks that the state is one of the defined values.
func (v Verification) Validate() error {
	if v != VerificationPending && v != Verified && v != VerificationRejected {
		return errs.NewValueIsInvalidErrorWithCause("verification",
			fmt.Errorf("%d is not a valid verification state", v))
	}
	return nil
}

// String implements fmt.Stringer.
func (v Verification) String() string {
	if str, ok := verificationStrings()[v]; ok {
		return str
	}
	return "Unknown"
}

// Decide applies an admin decision. The outcome must be Verified or
// VerificationRejected; revising an earlier decision is allowed.
func (v Verification) Decide(outcome Verification) (Verification, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}
	if outcome != Verified && outcome != VerificationRejected {
		return 0, errs.NewValueIsInvalidErrorWithCause("verification",
			fmt.Errorf("%s is not a valid verification outcome", outcome.String()))
	}
	return outcome, nil
}
