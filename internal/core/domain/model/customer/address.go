package customer

import (
	"errors"
	"fmt"
	"strings"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// AddressType classifies what an address is used for.
type AddressType string

const (
	AddressTypeHome     AddressType = "home"
	AddressTypeWork     AddressType = "work"
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

func getValidAddressTypes() map[AddressType]struct{} {
	return map[AddressType]struct{}{
		AddressTypeHome:     {},
		AddressTypeWork:     {},
		AddressTypeBilling:  {},
		AddressTypeShipping: {},
	}
}

// Validate checks the address type is one of the known values.
func (t AddressType) Validate() error {
	if _, ok := getValidAddressTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("address type is invalid",
			fmt.Errorf("%q is not a valid address type", string(t)))
	}
	return nil
}

func (t AddressType) String() string {
	return string(t)
}

// Address is a postal address owned by a Customer. Addresses are child
// entities of the Customer aggregate and are only reachable through it.
type Address struct {
	id            kernel.UUID
	line1         string
	line2         string
	city          string
	stateProvince string
	postalCode    string
	country       string
	addressType   AddressType
	isPrimary     bool

	isConstructed bool
}

// NewAddress creates a validated Address. line1, city and country are
// required; the other location fields may be left empty.
func NewAddress(
	id kernel.UUID,
	line1, line2, city, stateProvince, postalCode, country string,
	addressType AddressType,
	isPrimary bool,
) (*Address, error) {
	address := &Address{
		line2:         strings.TrimSpace(line2),
		stateProvince: strings.TrimSpace(stateProvince),
		postalCode:    strings.TrimSpace(postalCode),
		isPrimary:     isPrimary,
		isConstructed: true,
	}

	if err := errors.Join(
		address.setID(id),
		address.setLine1(line1),
		address.setCity(city),
		address.setCountry(country),
		address.setType(addressType),
	); err != nil {
		return nil, err
	}

	return address, nil
}

// Validate ensures the Address was created through NewAddress.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// IsEqual compares two addresses by their identifiers.
func (a *Address) IsEqual(other *Address) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Address) ID() kernel.UUID {
	return a.id
}

func (a *Address) Line1() string {
	return a.line1
}

func (a *Address) Line2() string {
	return a.line2
}

func (a *Address) City() string {
	return a.city
}

func (a *Address) StateProvince() string {
	return a.stateProvince
}

func (a *Address) PostalCode() string {
	return a.postalCode
}

func (a *Address) Country() string {
	return a.country
}

func (a *Address) Type() AddressType {
	return a.addressType
}

func (a *Address) IsPrimary() bool {
	return a.isPrimary
}

// markPrimary and clearPrimary are reserved for the owning Customer,
// which enforces the single-primary invariant across the collection.
func (a *Address) markPrimary() {
	a.isPrimary = true
}

func (a *Address) clearPrimary() {
	a.isPrimary = false
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setLine1(line1 string) error {
	trimmed := strings.TrimSpace(line1)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("address line1")
	}
	a.line1 = trimmed
	return nil
}

func (a *Address) setCity(city string) error {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("address city")
	}
	a.city = trimmed
	return nil
}

func (a *Address) setCountry(country string) error {
	trimmed := strings.TrimSpace(country)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("address country")
	}
	a.country = trimmed
	return nil
}

func (a *Address) setType(addressType AddressType) error {
	if err := addressType.Validate(); err != nil {
		return err
	}
	a.addressType = addressType
	return nil
}
