package ports

import (
	"context"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for motor vehicle
// aggregates, keyed by VIN.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// Fails with ObjectAlreadyExists when the VIN is already registered.
	Add(ctx context.Context, aggregate *vehicle.MotorVehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.MotorVehicle) error

	// Delete removes a vehicle. Transactions referencing the VIN block
	// the delete with ObjectInUse.
	Delete(ctx context.Context, vin kernel.VIN) error

	// Get retrieves a vehicle aggregate by its VIN.
	Get(ctx context.Context, vin kernel.VIN) (*vehicle.MotorVehicle, error)

	// GetByOwner retrieves the vehicles owned by a customer, in the
	// natural order.
	GetByOwner(ctx context.Context, ownerID kernel.CustomerID) ([]*vehicle.MotorVehicle, error)

	// GetAll retrieves all vehicles ordered by year descending, then
	// make and model.
	GetAll(ctx context.Context) ([]*vehicle.MotorVehicle, error)

	// Search retrieves vehicles whose VIN, make, model or plate contains
	// the text, case-insensitively, in the natural order.
	Search(ctx context.Context, text string) ([]*vehicle.MotorVehicle, error)
}
