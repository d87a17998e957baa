package account

import (
	"fmt"

	"bottleshop/internal/pkg/errs"
)

// Role identifies which side of the storefront an account acts on.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders.
	RoleCustomer

	// RoleVendor owns catalog entries and fulfills line items.
	RoleVendor

	// RoleCourier transports handed-over line items.
	RoleCourier

	// RoleAdmin verifies accounts from the back-office console.
	RoleAdmin
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "Customer",
		RoleVendor:   "Vendor",
		RoleCourier:  "Courier",
		RoleAdmin:    "Admin",
	}
}

// RoleFromString parses a role from its wire form (lowercase name).
func RoleFromString(s string) (Role, error) {
	switch s {
	case "customer":
		return RoleCustomer, nil
	case "vendor":
		return RoleVendor, nil
	case "courier":
		return RoleCourier, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleVendor && r != RoleCourier && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := roleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
