package kernel

import (
	"fmt"
	"strings"

	"heim/internal/pkg/errs"
)

// LicensePlate is a vehicle license plate with an optional issuing
// state or province. The plate value is uppercased and trimmed.
type LicensePlate struct {
	value         string
	stateProvince string
}

// NewLicensePlate normalizes and wraps a license plate.
func NewLicensePlate(value, stateProvince string) (LicensePlate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if normalized == "" {
		return LicensePlate{}, errs.NewValueIsRequiredError("license plate")
	}
	return LicensePlate{
		value:         normalized,
		stateProvince: strings.TrimSpace(stateProvince),
	}, nil
}

func (p LicensePlate) Value() string {
	return p.value
}

func (p LicensePlate) StateProvince() string {
	return p.stateProvince
}

// FullPlate renders the plate with its issuing state when known,
// e.g. "ABC123 (ON)".
func (p LicensePlate) FullPlate() string {
	if p.stateProvince != "" {
		return fmt.Sprintf("%s (%s)", p.value, p.stateProvince)
	}
	return p.value
}

func (p LicensePlate) String() string {
	return p.FullPlate()
}

// Validate returns an error for the zero value.
func (p LicensePlate) Validate() error {
	if p.value == "" {
		return errs.NewValueIsRequiredError("license plate must be created via NewLicensePlate")
	}
	return nil
}
