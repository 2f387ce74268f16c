package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"
)

// ErrMotorVehicleIsNotConstructed is returned when a MotorVehicle instance
// was not created through the NewMotorVehicle factory method.
var ErrMotorVehicleIsNotConstructed = errors.New(
	"MotorVehicle must be created via NewMotorVehicle constructor")

const (
	// minModelYear predates the first production automobile.
	minModelYear = 1886
)

// MotorVehicle is the aggregate root for a registered vehicle, identified
// by its VIN.
//
// MotorVehicle maintains these invariants:
//   - VIN, make, model, year, fuel type and transmission are valid
//   - Recorded mileage never decreases
//   - Can only be created through NewMotorVehicle or RestoreMotorVehicle
type MotorVehicle struct {
	vin   kernel.VIN
	make  string
	model string
	year  int
	color string

	fuelType     FuelType
	transmission Transmission

	// engineCapacityCC is nil for vehicles without a combustion engine
	engineCapacityCC *int

	mileageKm int

	licensePlate *kernel.LicensePlate

	// ownerID is the owning customer (nil when ownership is unknown)
	ownerID *kernel.CustomerID

	status Status

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewMotorVehicle creates a new MotorVehicle with Active status and zero
// recorded mileage adjustments beyond the initial reading.
func NewMotorVehicle(
	vin kernel.VIN,
	vehicleMake, model string,
	year int,
	color string,
	fuelType FuelType,
	transmission Transmission,
	engineCapacityCC *int,
	mileage kernel.Mileage,
	licensePlate *kernel.LicensePlate,
	ownerID *kernel.CustomerID,
) (*MotorVehicle, error) {
	now := time.Now().UTC()
	vehicle := &MotorVehicle{
		color:         strings.TrimSpace(color),
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		vehicle.setVIN(vin),
		vehicle.setMake(vehicleMake),
		vehicle.setModel(model),
		vehicle.setYear(year),
		vehicle.setFuelType(fuelType),
		vehicle.setTransmission(transmission),
		vehicle.setEngineCapacity(engineCapacityCC),
		vehicle.setInitialMileage(mileage),
		vehicle.setLicensePlate(licensePlate),
		vehicle.setOwner(ownerID),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// RestoreMotorVehicle reconstructs a MotorVehicle from persistence.
func RestoreMotorVehicle(
	vin kernel.VIN,
	vehicleMake, model string,
	year int,
	color string,
	fuelType FuelType,
	transmission Transmission,
	engineCapacityCC *int,
	mileageKm int,
	licensePlate *kernel.LicensePlate,
	ownerID *kernel.CustomerID,
	status Status,
	createdAt, updatedAt time.Time,
) (*MotorVehicle, error) {
	mileage, err := kernel.NewMileage(mileageKm, kernel.Kilometers)
	if err != nil {
		return nil, err
	}

	vehicle, err := NewMotorVehicle(vin, vehicleMake, model, year, color,
		fuelType, transmission, engineCapacityCC, mileage, licensePlate, ownerID)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	vehicle.status = status
	vehicle.createdAt = createdAt
	vehicle.updatedAt = updatedAt
	return vehicle, nil
}

// Validate ensures the MotorVehicle was properly constructed.
func (v *MotorVehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrMotorVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares two vehicles by VIN.
func (v *MotorVehicle) IsEqual(other *MotorVehicle) bool {
	return other != nil && v.vin.IsEqual(other.vin)
}

func (v *MotorVehicle) VIN() kernel.VIN {
	return v.vin
}

func (v *MotorVehicle) Make() string {
	return v.make
}

func (v *MotorVehicle) Model() string {
	return v.model
}

func (v *MotorVehicle) Year() int {
	return v.year
}

func (v *MotorVehicle) Color() string {
	return v.color
}

func (v *MotorVehicle) FuelType() FuelType {
	return v.fuelType
}

func (v *MotorVehicle) Transmission() Transmission {
	return v.transmission
}

// EngineCapacityCC returns the engine displacement, nil when not
// applicable.
func (v *MotorVehicle) EngineCapacityCC() *int {
	return v.engineCapacityCC
}

// MileageKm returns the recorded mileage in kilometers.
func (v *MotorVehicle) MileageKm() int {
	return v.mileageKm
}

// LicensePlate returns the current plate, nil when none is issued.
func (v *MotorVehicle) LicensePlate() *kernel.LicensePlate {
	return v.licensePlate
}

// Owner returns the owning customer's id, nil when ownership is unknown.
func (v *MotorVehicle) Owner() *kernel.CustomerID {
	return v.ownerID
}

func (v *MotorVehicle) Status() Status {
	return v.status
}

func (v *MotorVehicle) CreatedAt() time.Time {
	return v.createdAt
}

func (v *MotorVehicle) UpdatedAt() time.Time {
	return v.updatedAt
}

// ChangeColor replaces the color. Returns true when the stored value
// actually changed.
func (v *MotorVehicle) ChangeColor(color string) bool {
	trimmed := strings.TrimSpace(color)
	if v.color == trimmed {
		return false
	}
	v.color = trimmed
	v.touch()
	return true
}

// ChangeLicensePlate replaces the plate. A nil plate clears it. Returns
// true when the stored value actually changed.
func (v *MotorVehicle) ChangeLicensePlate(plate *kernel.LicensePlate) (bool, error) {
	if plate != nil {
		if err := plate.Validate(); err != nil {
			return false, err
		}
	}

	switch {
	case v.licensePlate == nil && plate == nil:
		return false, nil
	case v.licensePlate != nil && plate != nil &&
		v.licensePlate.Value() == plate.Value() &&
		v.licensePlate.StateProvince() == plate.StateProvince():
		return false, nil
	}

	v.licensePlate = plate
	v.touch()
	return true, nil
}

// UpdateMileage records a new odometer reading. Readings below the stored
// mileage are rejected; a reading equal to the stored mileage is accepted
// as a no-op. Returns true when the stored mileage actually changed.
func (v *MotorVehicle) UpdateMileage(mileage kernel.Mileage) (bool, error) {
	if err := mileage.Validate(); err != nil {
		return false, err
	}

	proposedKm := mileage.InKilometers()
	if proposedKm < v.mileageKm {
		return false, errs.NewInvalidStateTransitionErrorWithCause(
			"mileage", v.vin.Value(), "update mileage", fmt.Sprintf("%d km", v.mileageKm),
			fmt.Errorf("mileage cannot be less than the recorded %d km, got %d km",
				v.mileageKm, proposedKm))
	}
	if proposedKm == v.mileageKm {
		return false, nil
	}

	v.mileageKm = proposedKm
	v.touch()
	return true, nil
}

// TransferOwnership assigns the vehicle to a new owner. A nil owner
// records the ownership as unknown. Transferring to the current owner is
// not an error and reports false.
func (v *MotorVehicle) TransferOwnership(ownerID *kernel.CustomerID) (bool, error) {
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return false, err
		}
	}

	switch {
	case v.ownerID == nil && ownerID == nil:
		return false, nil
	case v.ownerID != nil && ownerID != nil && v.ownerID.IsEqual(*ownerID):
		return false, nil
	}

	v.ownerID = ownerID
	v.touch()
	return true, nil
}

// ChangeStatus moves the vehicle to the given status. Setting the current
// status again reports false.
func (v *MotorVehicle) ChangeStatus(status Status) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}
	if v.status == status {
		return false, nil
	}

	v.status = status
	v.touch()
	return true, nil
}

// MarkSold records the vehicle as sold.
func (v *MotorVehicle) MarkSold() (bool, error) {
	return v.ChangeStatus(StatusSold)
}

// MarkScrapped records the vehicle as scrapped.
func (v *MotorVehicle) MarkScrapped() (bool, error) {
	return v.ChangeStatus(StatusScrapped)
}

// MarkStolen records the vehicle as stolen.
func (v *MotorVehicle) MarkStolen() (bool, error) {
	return v.ChangeStatus(StatusStolen)
}

// Reactivate returns the vehicle to active registration.
func (v *MotorVehicle) Reactivate() (bool, error) {
	return v.ChangeStatus(StatusActive)
}

func (v *MotorVehicle) touch() {
	v.updatedAt = time.Now().UTC()
}

func (v *MotorVehicle) setVIN(vin kernel.VIN) error {
	if err := vin.Validate(); err != nil {
		return err
	}
	v.vin = vin
	return nil
}

func (v *MotorVehicle) setMake(vehicleMake string) error {
	trimmed := strings.TrimSpace(vehicleMake)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("vehicle make")
	}
	v.make = trimmed
	return nil
}

func (v *MotorVehicle) setModel(model string) error {
	trimmed := strings.TrimSpace(model)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("vehicle model")
	}
	v.model = trimmed
	return nil
}

func (v *MotorVehicle) setYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < minModelYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("model year", year, minModelYear, maxYear)
	}
	v.year = year
	return nil
}

func (v *MotorVehicle) setFuelType(fuelType FuelType) error {
	if err := fuelType.Validate(); err != nil {
		return err
	}
	v.fuelType = fuelType
	return nil
}

func (v *MotorVehicle) setTransmission(transmission Transmission) error {
	if err := transmission.Validate(); err != nil {
		return err
	}
	v.transmission = transmission
	return nil
}

func (v *MotorVehicle) setEngineCapacity(engineCapacityCC *int) error {
	if engineCapacityCC == nil {
		return nil
	}
	if *engineCapacityCC <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("engine capacity is invalid",
			fmt.Errorf("%d is not greater than 0", *engineCapacityCC))
	}
	v.engineCapacityCC = engineCapacityCC
	return nil
}

func (v *MotorVehicle) setInitialMileage(mileage kernel.Mileage) error {
	if err := mileage.Validate(); err != nil {
		return err
	}
	v.mileageKm = mileage.InKilometers()
	return nil
}

func (v *MotorVehicle) setLicensePlate(plate *kernel.LicensePlate) error {
	if plate == nil {
		return nil
	}
	if err := plate.Validate(); err != nil {
		return err
	}
	v.licensePlate = plate
	return nil
}

func (v *MotorVehicle) setOwner(ownerID *kernel.CustomerID) error {
	if ownerID == nil {
		return nil
	}
	if err := ownerID.Validate(); err != nil {
		return err
	}
	v.ownerID = ownerID
	return nil
}
