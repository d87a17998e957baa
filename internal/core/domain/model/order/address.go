package order

import (
	"errors"

	"bottleshop/internal/pkg/errs"
)

var (
	// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

	// ErrStreetIsRequired is returned when the street line is empty.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")

	// ErrCityIsRequired is returned when the city is empty.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")

	// ErrPhoneIsRequired is returned when the contact phone is empty.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// Address is the shipping snapshot taken at order placement. It is a value
// object: set once, never re-validated against the customer's account.
type Address struct {
	street   string
	city     string
	postcode string
	phone    string

	isConstructed bool
}

// NewAddress creates a shipping address. Street, city, and phone are
// required; postcode may be empty.
func NewAddress(street, city, postcode, phone string) (Address, error) {
	address := Address{isConstructed: true}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setPhone(phone),
	); err != nil {
		return Address{}, err
	}

	address.postcode = postcode
	return address, nil
}

// Validate returns ErrAddressIsNotConstructed for a zero-value Address.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// Postcode returns the postcode, possibly empty.
func (a Address) Postcode() string {
	return a.postcode
}

// Phone returns the contact phone.
func (a Address) Phone() string {
	return a.phone
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}
	a.city = city
	return nil
}

func (a *Address) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	a.phone = phone
	return nil
}
