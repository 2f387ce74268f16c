package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"heim/internal/pkg/errs"
)

// vinPattern matches a normalized VIN: 17 characters, alphanumeric
// excluding I, O and Q (which are never used to avoid confusion with
// 1 and 0).
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// VIN is a validated Vehicle Identification Number and the primary
// identifier of a motor vehicle. Input is uppercased and stripped of
// spaces and hyphens before validation, so equal vehicles always
// normalize to the same stored value.
type VIN struct {
	value string
}

// NewVIN normalizes and validates a VIN.
func NewVIN(value string) (VIN, error) {
	normalized := normalizeVIN(value)
	if !vinPattern.MatchString(normalized) {
		return VIN{}, errs.NewValueIsInvalidErrorWithCause("vin",
			fmt.Errorf("%q is not a valid 17-character VIN", value))
	}
	return VIN{value: normalized}, nil
}

func normalizeVIN(raw string) string {
	s := strings.ToUpper(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

func (v VIN) Value() string {
	return v.value
}

func (v VIN) String() string {
	return v.value
}

// Validate returns an error for the zero value.
func (v VIN) Validate() error {
	if v.value == "" {
		return errs.NewValueIsRequiredError("vin must be created via NewVIN")
	}
	return nil
}

func (v VIN) IsEqual(other VIN) bool {
	return v.value == other.value
}
