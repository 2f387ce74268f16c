package kernel

import (
	"fmt"

	"heim/internal/pkg/errs"
	"heim/internal/pkg/guard"
)

// MileageUnit is the unit a mileage reading was taken in.
type MileageUnit string

const (
	Kilometers MileageUnit = "km"
	Miles      MileageUnit = "mi"
)

const (
	milesToKilometers = 1.60934
	kilometersToMiles = 0.621371
)

// ErrMileageIsNotConstructed is returned when validating a zero-value
// Mileage.
var ErrMileageIsNotConstructed = errs.NewValueIsRequiredError(
	"mileage must be created via NewMileage")

// Mileage is an odometer reading: a non-negative integer with a unit.
// Conversions truncate toward zero, so converting back and forth may
// lose at most one unit but never gains distance.
type Mileage struct { //nolint:recvcheck //using for validation
	value int
	unit  MileageUnit

	guard guard.ConstructorGuard
}

// NewMileage validates and wraps a mileage reading.
func NewMileage(value int, unit MileageUnit) (Mileage, error) {
	if value < 0 {
		return Mileage{}, errs.NewValueIsInvalidErrorWithCause("mileage",
			fmt.Errorf("%d is negative", value))
	}
	if unit != Kilometers && unit != Miles {
		return Mileage{}, errs.NewValueIsInvalidErrorWithCause("mileage unit",
			fmt.Errorf("%q is not %q or %q", unit, Kilometers, Miles))
	}
	return Mileage{
		value: value,
		unit:  unit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the mileage was created through the constructor.
func (m Mileage) Validate() error {
	return m.guard.Validate(ErrMileageIsNotConstructed)
}

func (m Mileage) Value() int {
	return m.value
}

func (m Mileage) Unit() MileageUnit {
	return m.unit
}

// InKilometers converts the reading to kilometers, truncated to an
// integer.
func (m Mileage) InKilometers() int {
	if m.unit == Kilometers {
		return m.value
	}
	return int(float64(m.value) * milesToKilometers)
}

// InMiles converts the reading to miles, truncated to an integer.
func (m Mileage) InMiles() int {
	if m.unit == Miles {
		return m.value
	}
	return int(float64(m.value) * kilometersToMiles)
}

func (m Mileage) String() string {
	return fmt.Sprintf("%d %s", m.value, m.unit)
}
