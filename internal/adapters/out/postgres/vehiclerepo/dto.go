// Package vehiclerepo provides data transfer objects and mapping
// functions for motor vehicle persistence.
package vehiclerepo

import (
	"time"

	"heim/internal/adapters/out/postgres/customerrepo"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/vehicle"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. The VIN is the natural primary key. The owner reference is
// cleared, not cascaded, when the owning customer is removed.
type VehicleDTO struct {
	VIN              string `gorm:"type:varchar(17);primaryKey"`
	Make             string `gorm:"not null"`
	Model            string `gorm:"not null"`
	Year             int    `gorm:"not null"`
	Color            string
	FuelType         string `gorm:"type:varchar(16);not null"`
	Transmission     string `gorm:"type:varchar(16);not null"`
	EngineCapacityCC *int
	MileageKm        int
	PlateNumber      *string `gorm:"type:varchar(16)"`
	PlateState       *string `gorm:"type:varchar(8)"`
	OwnerID          *string `gorm:"type:varchar(14);index"`
	Status           string  `gorm:"type:varchar(16);not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Owner *customerrepo.CustomerDTO `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database
// representation.
func fromDomain(aggregate *vehicle.MotorVehicle) VehicleDTO {
	var plateNumber, plateState *string
	if plate := aggregate.LicensePlate(); plate != nil {
		number := plate.Value()
		state := plate.StateProvince()
		plateNumber = &number
		plateState = &state
	}

	var ownerID *string
	if owner := aggregate.Owner(); owner != nil {
		id := owner.Value()
		ownerID = &id
	}

	return VehicleDTO{
		VIN:              aggregate.VIN().Value(),
		Make:             aggregate.Make(),
		Model:            aggregate.Model(),
		Year:             aggregate.Year(),
		Color:            aggregate.Color(),
		FuelType:         string(aggregate.FuelType()),
		Transmission:     string(aggregate.Transmission()),
		EngineCapacityCC: aggregate.EngineCapacityCC(),
		MileageKm:        aggregate.MileageKm(),
		PlateNumber:      plateNumber,
		PlateState:       plateState,
		OwnerID:          ownerID,
		Status:           string(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate using
// RestoreMotorVehicle.
func toDomain(dto VehicleDTO) (*vehicle.MotorVehicle, error) {
	vin, err := kernel.NewVIN(dto.VIN)
	if err != nil {
		return nil, err
	}

	var plate *kernel.LicensePlate
	if dto.PlateNumber != nil {
		state := ""
		if dto.PlateState != nil {
			state = *dto.PlateState
		}
		p, plateErr := kernel.NewLicensePlate(*dto.PlateNumber, state)
		if plateErr != nil {
			return nil, plateErr
		}
		plate = &p
	}

	var ownerID *kernel.CustomerID
	if dto.OwnerID != nil {
		id, ownerErr := kernel.NewCustomerID(*dto.OwnerID)
		if ownerErr != nil {
			return nil, ownerErr
		}
		ownerID = &id
	}

	return vehicle.RestoreMotorVehicle(vin, dto.Make, dto.Model, dto.Year,
		dto.Color, vehicle.FuelType(dto.FuelType),
		vehicle.Transmission(dto.Transmission), dto.EngineCapacityCC,
		dto.MileageKm, plate, ownerID, vehicle.Status(dto.Status),
		dto.CreatedAt, dto.UpdatedAt)
}
