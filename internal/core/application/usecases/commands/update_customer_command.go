package commands

import (
	"errors"
	"strings"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"
	"heim/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a partial update of a customer's
// profile. Nil fields are left untouched; a phone pointing at the zero
// value clears the stored phone.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.CustomerID
	givenNames *string
	surnames   *string
	phone      *kernel.PhoneNumber

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer's
// profile. At least one field must be present.
func NewUpdateCustomerCommand(
	customerID kernel.CustomerID,
	givenNames, surnames *string,
	phone *kernel.PhoneNumber,
) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setGivenNames(givenNames),
		cmd.setSurnames(surnames),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	cmd.phone = phone

	if givenNames == nil && surnames == nil && phone == nil {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredError("at least one updatable field")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c UpdateCustomerCommand) GivenNames() *string {
	return c.givenNames
}

func (c UpdateCustomerCommand) Surnames() *string {
	return c.surnames
}

// Phone returns the requested phone change: nil when untouched, a zero
// value to clear, anything else to set.
func (c UpdateCustomerCommand) Phone() *kernel.PhoneNumber {
	return c.phone
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setGivenNames(givenNames *string) error {
	if givenNames == nil {
		return nil
	}
	if strings.TrimSpace(*givenNames) == "" {
		return errs.NewValueIsRequiredError("given names")
	}
	c.givenNames = givenNames
	return nil
}

func (c *UpdateCustomerCommand) setSurnames(surnames *string) error {
	if surnames == nil {
		return nil
	}
	if strings.TrimSpace(*surnames) == "" {
		return errs.NewValueIsRequiredError("surnames")
	}
	c.surnames = surnames
	return nil
}
