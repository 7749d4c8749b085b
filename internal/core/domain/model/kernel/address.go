package kernel

import (
	"errors"
	"fmt"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is the shipping target of a member and of the deliveries created for
// that member's orders. It is an immutable value object: two addresses with the
// same city, street and zipcode are equal.
type Address struct { //nolint:recvcheck //using for validation
	city    string
	street  string
	zipcode string

	guard guard.ConstructorGuard
}

// NewAddress validates and creates an Address. Surrounding whitespace is trimmed
// and every part is required.
func NewAddress(city, street, zipcode string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setCity(city),
		addr.setStreet(street),
		addr.setZipcode(zipcode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) City() string {
	return a.city
}

func (a Address) Street() string {
	return a.street
}

func (a Address) Zipcode() string {
	return a.zipcode
}

func (a Address) IsEqual(other Address) bool {
	return a == other
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s (%s)", a.street, a.city, a.zipcode)
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setZipcode(zipcode string) error {
	zipcode = strings.TrimSpace(zipcode)
	if zipcode == "" {
		return errs.NewValueIsRequiredError("zipcode")
	}
	a.zipcode = zipcode
	return nil
}
