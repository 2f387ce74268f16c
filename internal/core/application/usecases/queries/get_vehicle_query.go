package queries

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrGetVehicleQueryIsNotConstructed = errors.New(
	"GetVehicleQuery must be created via NewGetVehicleQuery constructor",
)

// GetVehicleQuery retrieves one vehicle by VIN.
type GetVehicleQuery struct {
	vin kernel.VIN

	guard guard.ConstructorGuard
}

// NewGetVehicleQuery creates a query to retrieve a vehicle by VIN.
func NewGetVehicleQuery(vin kernel.VIN) (GetVehicleQuery, error) {
	if err := vin.Validate(); err != nil {
		return GetVehicleQuery{}, err
	}

	return GetVehicleQuery{
		vin:   vin,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleQueryIsNotConstructed)
}

func (q GetVehicleQuery) VIN() kernel.VIN {
	return q.vin
}
