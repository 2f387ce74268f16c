package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrRemoveCustomerAddressCommandIsNotConstructed = errors.New(
	"RemoveCustomerAddressCommand must be created via NewRemoveCustomerAddressCommand constructor",
)

// RemoveCustomerAddressCommand represents a request to detach an address
// from a customer.
type RemoveCustomerAddressCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.CustomerID
	addressID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCustomerAddressCommand creates a command to detach an address.
func NewRemoveCustomerAddressCommand(
	customerID kernel.CustomerID, addressID kernel.UUID,
) (RemoveCustomerAddressCommand, error) {
	cmd := RemoveCustomerAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setAddressID(addressID),
	); err != nil {
		return RemoveCustomerAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCustomerAddressCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCustomerAddressCommandIsNotConstructed)
}

func (c RemoveCustomerAddressCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c RemoveCustomerAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c *RemoveCustomerAddressCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RemoveCustomerAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	c.addressID = addressID
	return nil
}
