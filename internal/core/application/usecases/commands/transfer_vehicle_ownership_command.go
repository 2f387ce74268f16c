package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrTransferVehicleOwnershipCommandIsNotConstructed = errors.New(
	"TransferVehicleOwnershipCommand must be created via NewTransferVehicleOwnershipCommand constructor",
)

// TransferVehicleOwnershipCommand represents a request to move a vehicle
// to a new owner. A nil owner records the ownership as unknown.
type TransferVehicleOwnershipCommand struct { //nolint:recvcheck //using for validation
	vin        kernel.VIN
	newOwnerID *kernel.CustomerID

	guard guard.ConstructorGuard
}

// NewTransferVehicleOwnershipCommand creates a command to transfer
// ownership.
func NewTransferVehicleOwnershipCommand(
	vin kernel.VIN, newOwnerID *kernel.CustomerID,
) (TransferVehicleOwnershipCommand, error) {
	cmd := TransferVehicleOwnershipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVIN(vin),
		cmd.setNewOwnerID(newOwnerID),
	); err != nil {
		return TransferVehicleOwnershipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferVehicleOwnershipCommand) Validate() error {
	return c.guard.Validate(ErrTransferVehicleOwnershipCommandIsNotConstructed)
}

func (c TransferVehicleOwnershipCommand) VIN() kernel.VIN {
	return c.vin
}

func (c TransferVehicleOwnershipCommand) NewOwnerID() *kernel.CustomerID {
	return c.newOwnerID
}

func (c *TransferVehicleOwnershipCommand) setVIN(vin kernel.VIN) error {
	if err := vin.Validate(); err != nil {
		return err
	}
	c.vin = vin
	return nil
}

func (c *TransferVehicleOwnershipCommand) setNewOwnerID(newOwnerID *kernel.CustomerID) error {
	if newOwnerID == nil {
		return nil
	}
	if err := newOwnerID.Validate(); err != nil {
		return err
	}
	c.newOwnerID = newOwnerID
	return nil
}
