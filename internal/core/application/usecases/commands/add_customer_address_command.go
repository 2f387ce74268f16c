package commands

import (
	"errors"
	"strings"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"
	"heim/internal/pkg/guard"
)

var ErrAddCustomerAddressCommandIsNotConstructed = errors.New(
	"AddCustomerAddressCommand must be created via NewAddCustomerAddressCommand constructor",
)

// AddCustomerAddressCommand represents a request to attach an address to
// a customer.
type AddCustomerAddressCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.CustomerID
	line1         string
	line2         string
	city          string
	stateProvince string
	postalCode    string
	country       string
	addressType   customer.AddressType
	isPrimary     bool

	guard guard.ConstructorGuard
}

// NewAddCustomerAddressCommand creates a command to attach an address.
func NewAddCustomerAddressCommand(
	customerID kernel.CustomerID,
	line1, line2, city, stateProvince, postalCode, country string,
	addressType customer.AddressType,
	isPrimary bool,
) (AddCustomerAddressCommand, error) {
	cmd := AddCustomerAddressCommand{
		line2:         strings.TrimSpace(line2),
		stateProvince: strings.TrimSpace(stateProvince),
		postalCode:    strings.TrimSpace(postalCode),
		isPrimary:     isPrimary,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLine1(line1),
		cmd.setCity(city),
		cmd.setCountry(country),
		cmd.setAddressType(addressType),
	); err != nil {
		return AddCustomerAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCustomerAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddCustomerAddressCommandIsNotConstructed)
}

func (c AddCustomerAddressCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c AddCustomerAddressCommand) Line1() string {
	return c.line1
}

func (c AddCustomerAddressCommand) Line2() string {
	return c.line2
}

func (c AddCustomerAddressCommand) City() string {
	return c.city
}

func (c AddCustomerAddressCommand) StateProvince() string {
	return c.stateProvince
}

func (c AddCustomerAddressCommand) PostalCode() string {
	return c.postalCode
}

func (c AddCustomerAddressCommand) Country() string {
	return c.country
}

func (c AddCustomerAddressCommand) AddressType() customer.AddressType {
	return c.addressType
}

func (c AddCustomerAddressCommand) IsPrimary() bool {
	return c.isPrimary
}

func (c *AddCustomerAddressCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *AddCustomerAddressCommand) setLine1(line1 string) error {
	trimmed := strings.TrimSpace(line1)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("address line1")
	}
	c.line1 = trimmed
	return nil
}

func (c *AddCustomerAddressCommand) setCity(city string) error {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("address city")
	}
	c.city = trimmed
	return nil
}

func (c *AddCustomerAddressCommand) setCountry(country string) error {
	trimmed := strings.TrimSpace(country)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("address country")
	}
	c.country = trimmed
	return nil
}

func (c *AddCustomerAddressCommand) setAddressType(addressType customer.AddressType) error {
	if err := addressType.Validate(); err != nil {
		return err
	}
	c.addressType = addressType
	return nil
}
