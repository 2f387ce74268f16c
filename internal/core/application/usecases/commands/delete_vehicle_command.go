package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand represents a request to remove a vehicle.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	vin kernel.VIN

	guard guard.ConstructorGuard
}

// NewDeleteVehicleCommand creates a command to remove a vehicle.
func NewDeleteVehicleCommand(vin kernel.VIN) (DeleteVehicleCommand, error) {
	cmd := DeleteVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVIN(vin); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

func (c DeleteVehicleCommand) VIN() kernel.VIN {
	return c.vin
}

func (c *DeleteVehicleCommand) setVIN(vin kernel.VIN) error {
	if err := vin.Validate(); err != nil {
		return err
	}
	c.vin = vin
	return nil
}
