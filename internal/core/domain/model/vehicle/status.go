package vehicle

import (
	"fmt"

	"heim/internal/pkg/errs"
)

// Status is the registration state of a motor vehicle.
//
// Any status can move to any other status: a sold vehicle can come back
// active, a stolen one can be recovered. The enum only guards against
// unknown values.
type Status string

const (
	StatusActive   Status = "active"
	StatusSold     Status = "sold"
	StatusScrapped Status = "scrapped"
	StatusStolen   Status = "stolen"
)

func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusActive:   {},
		StatusSold:     {},
		StatusScrapped: {},
		StatusStolen:   {},
	}
}

// Validate checks the status is one of the known values.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle status is invalid",
			fmt.Errorf("%q is not a valid vehicle status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// FuelType is the vehicle's fuel.
type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
	FuelLPG      FuelType = "lpg"
)

func getValidFuelTypes() map[FuelType]struct{} {
	return map[FuelType]struct{}{
		FuelPetrol:   {},
		FuelDiesel:   {},
		FuelElectric: {},
		FuelHybrid:   {},
		FuelLPG:      {},
	}
}

func (f FuelType) Validate() error {
	if _, ok := getValidFuelTypes()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fuel type is invalid",
			fmt.Errorf("%q is not a valid fuel type", string(f)))
	}
	return nil
}

func (f FuelType) String() string {
	return string(f)
}

// Transmission is the vehicle's gearbox type.
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionCVT       Transmission = "cvt"
)

func getValidTransmissions() map[Transmission]struct{} {
	return map[Transmission]struct{}{
		TransmissionManual:    {},
		TransmissionAutomatic: {},
		TransmissionCVT:       {},
	}
}

func (t Transmission) Validate() error {
	if _, ok := getValidTransmissions()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transmission is invalid",
			fmt.Errorf("%q is not a valid transmission", string(t)))
	}
	return nil
}

func (t Transmission) String() string {
	return string(t)
}
