package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrUpdateCustomerEmailCommandIsNotConstructed = errors.New(
	"UpdateCustomerEmailCommand must be created via NewUpdateCustomerEmailCommand constructor",
)

// UpdateCustomerEmailCommand represents a request to change a customer's
// unique email address.
type UpdateCustomerEmailCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.CustomerID
	email      kernel.Email

	guard guard.ConstructorGuard
}

// NewUpdateCustomerEmailCommand creates a command to change a customer's email.
func NewUpdateCustomerEmailCommand(
	customerID kernel.CustomerID, email kernel.Email,
) (UpdateCustomerEmailCommand, error) {
	cmd := UpdateCustomerEmailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setEmail(email),
	); err != nil {
		return UpdateCustomerEmailCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerEmailCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerEmailCommandIsNotConstructed)
}

func (c UpdateCustomerEmailCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c UpdateCustomerEmailCommand) Email() kernel.Email {
	return c.email
}

func (c *UpdateCustomerEmailCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerEmailCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}
