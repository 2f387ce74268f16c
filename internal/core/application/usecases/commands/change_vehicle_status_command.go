package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/vehicle"
	"heim/internal/pkg/guard"
)

var ErrChangeVehicleStatusCommandIsNotConstructed = errors.New(
	"ChangeVehicleStatusCommand must be created via NewChangeVehicleStatusCommand constructor",
)

// ChangeVehicleStatusCommand represents a request to move a vehicle to a
// new registration status.
type ChangeVehicleStatusCommand struct { //nolint:recvcheck //using for validation
	vin    kernel.VIN
	status vehicle.Status

	guard guard.ConstructorGuard
}

// NewChangeVehicleStatusCommand creates a command to change a vehicle's
// status.
func NewChangeVehicleStatusCommand(
	vin kernel.VIN, status vehicle.Status,
) (ChangeVehicleStatusCommand, error) {
	cmd := ChangeVehicleStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVIN(vin),
		cmd.setStatus(status),
	); err != nil {
		return ChangeVehicleStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeVehicleStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeVehicleStatusCommandIsNotConstructed)
}

func (c ChangeVehicleStatusCommand) VIN() kernel.VIN {
	return c.vin
}

func (c ChangeVehicleStatusCommand) Status() vehicle.Status {
	return c.status
}

func (c *ChangeVehicleStatusCommand) setVIN(vin kernel.VIN) error {
	if err := vin.Validate(); err != nil {
		return err
	}
	c.vin = vin
	return nil
}

func (c *ChangeVehicleStatusCommand) setStatus(status vehicle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
