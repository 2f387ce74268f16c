package commands

import (
	"errors"
	"strings"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/vehicle"
	"heim/internal/pkg/errs"
	"heim/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new motor
// vehicle, optionally assigned to an owning customer.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vin              kernel.VIN
	make             string
	model            string
	year             int
	color            string
	fuelType         vehicle.FuelType
	transmission     vehicle.Transmission
	engineCapacityCC *int
	mileage          kernel.Mileage
	licensePlate     *kernel.LicensePlate
	ownerID          *kernel.CustomerID

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Detailed field validation happens in the aggregate constructor; the
// command only rejects inputs that cannot possibly be valid.
func NewCreateVehicleCommand(
	vin kernel.VIN,
	vehicleMake, model string,
	year int,
	color string,
	fuelType vehicle.FuelType,
	transmission vehicle.Transmission,
	engineCapacityCC *int,
	mileage kernel.Mileage,
	licensePlate *kernel.LicensePlate,
	ownerID *kernel.CustomerID,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		year:             year,
		color:            strings.TrimSpace(color),
		engineCapacityCC: engineCapacityCC,
		licensePlate:     licensePlate,
		ownerID:          ownerID,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVIN(vin),
		cmd.setMake(vehicleMake),
		cmd.setModel(model),
		cmd.setFuelType(fuelType),
		cmd.setTransmission(transmission),
		cmd.setMileage(mileage),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) VIN() kernel.VIN {
	return c.vin
}

func (c CreateVehicleCommand) Make() string {
	return c.make
}

func (c CreateVehicleCommand) Model() string {
	return c.model
}

func (c CreateVehicleCommand) Year() int {
	return c.year
}

func (c CreateVehicleCommand) Color() string {
	return c.color
}

func (c CreateVehicleCommand) FuelType() vehicle.FuelType {
	return c.fuelType
}

func (c CreateVehicleCommand) Transmission() vehicle.Transmission {
	return c.transmission
}

func (c CreateVehicleCommand) EngineCapacityCC() *int {
	return c.engineCapacityCC
}

func (c CreateVehicleCommand) Mileage() kernel.Mileage {
	return c.mileage
}

func (c CreateVehicleCommand) LicensePlate() *kernel.LicensePlate {
	return c.licensePlate
}

func (c CreateVehicleCommand) OwnerID() *kernel.CustomerID {
	return c.ownerID
}

func (c *CreateVehicleCommand) setVIN(vin kernel.VIN) error {
	if err := vin.Validate(); err != nil {
		return err
	}
	c.vin = vin
	return nil
}

func (c *CreateVehicleCommand) setMake(vehicleMake string) error {
	trimmed := strings.TrimSpace(vehicleMake)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("vehicle make")
	}
	c.make = trimmed
	return nil
}

func (c *CreateVehicleCommand) setModel(model string) error {
	trimmed := strings.TrimSpace(model)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("vehicle model")
	}
	c.model = trimmed
	return nil
}

func (c *CreateVehicleCommand) setFuelType(fuelType vehicle.FuelType) error {
	if err := fuelType.Validate(); err != nil {
		return err
	}
	c.fuelType = fuelType
	return nil
}

func (c *CreateVehicleCommand) setTransmission(transmission vehicle.Transmission) error {
	if err := transmission.Validate(); err != nil {
		return err
	}
	c.transmission = transmission
	return nil
}

func (c *CreateVehicleCommand) setMileage(mileage kernel.Mileage) error {
	if err := mileage.Validate(); err != nil {
		return err
	}
	c.mileage = mileage
	return nil
}
