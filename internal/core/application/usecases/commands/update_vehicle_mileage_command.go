package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrUpdateVehicleMileageCommandIsNotConstructed = errors.New(
	"UpdateVehicleMileageCommand must be created via NewUpdateVehicleMileageCommand constructor",
)

// UpdateVehicleMileageCommand represents a new odometer reading for a
// vehicle, in either kilometers or miles.
type UpdateVehicleMileageCommand struct { //nolint:recvcheck //using for validation
	vin     kernel.VIN
	mileage kernel.Mileage

	guard guard.ConstructorGuard
}

// NewUpdateVehicleMileageCommand creates a command to record an odometer
// reading.
func NewUpdateVehicleMileageCommand(
	vin kernel.VIN, mileage kernel.Mileage,
) (UpdateVehicleMileageCommand, error) {
	cmd := UpdateVehicleMileageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVIN(vin),
		cmd.setMileage(mileage),
	); err != nil {
		return UpdateVehicleMileageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleMileageCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleMileageCommandIsNotConstructed)
}

func (c UpdateVehicleMileageCommand) VIN() kernel.VIN {
	return c.vin
}

func (c UpdateVehicleMileageCommand) Mileage() kernel.Mileage {
	return c.mileage
}

func (c *UpdateVehicleMileageCommand) setVIN(vin kernel.VIN) error {
	if err := vin.Validate(); err != nil {
		return err
	}
	c.vin = vin
	return nil
}

func (c *UpdateVehicleMileageCommand) setMileage(mileage kernel.Mileage) error {
	if err := mileage.Validate(); err != nil {
		return err
	}
	c.mileage = mileage
	return nil
}
