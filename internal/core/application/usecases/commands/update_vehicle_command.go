package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"
	"heim/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents a partial update of a vehicle's
// cosmetic fields. Nil fields are left untouched; a plate pointing at the
// zero value clears the stored plate.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	vin          kernel.VIN
	color        *string
	licensePlate *kernel.LicensePlate

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to update a vehicle. At least
// one field must be present.
func NewUpdateVehicleCommand(
	vin kernel.VIN,
	color *string,
	licensePlate *kernel.LicensePlate,
) (UpdateVehicleCommand, error) {
	cmd := UpdateVehicleCommand{
		color:        color,
		licensePlate: licensePlate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setVIN(vin); err != nil {
		return UpdateVehicleCommand{}, err
	}

	if color == nil && licensePlate == nil {
		return UpdateVehicleCommand{}, errs.NewValueIsRequiredError("at least one updatable field")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

func (c UpdateVehicleCommand) VIN() kernel.VIN {
	return c.vin
}

func (c UpdateVehicleCommand) Color() *string {
	return c.color
}

// LicensePlate returns the requested plate change: nil when untouched, a
// zero value to clear, anything else to set.
func (c UpdateVehicleCommand) LicensePlate() *kernel.LicensePlate {
	return c.licensePlate
}

func (c *UpdateVehicleCommand) setVIN(vin kernel.VIN) error {
	if err := vin.Validate(); err != nil {
		return err
	}
	c.vin = vin
	return nil
}
