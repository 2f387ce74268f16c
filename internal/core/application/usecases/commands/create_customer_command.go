package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// The customer id is generated by the handler from the registration time.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name  kernel.PersonName
	email kernel.Email
	phone *kernel.PhoneNumber

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
func NewCreateCustomerCommand(
	name kernel.PersonName,
	email kernel.Email,
	phone *kernel.PhoneNumber,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() kernel.PersonName {
	return c.name
}

func (c CreateCustomerCommand) Email() kernel.Email {
	return c.email
}

func (c CreateCustomerCommand) Phone() *kernel.PhoneNumber {
	return c.phone
}

func (c *CreateCustomerCommand) setName(name kernel.PersonName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone *kernel.PhoneNumber) error {
	if phone == nil {
		return nil
	}
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}
