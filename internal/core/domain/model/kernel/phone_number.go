package kernel

import (
	"fmt"
	"strings"

	"heim/internal/pkg/errs"
)

// PhoneNumber is a normalized phone number. Normalization trims
// surrounding whitespace and strips every character except digits,
// keeping a single leading "+" when present.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber normalizes and wraps a phone number. Input that
// contains no digits at all is invalid.
func NewPhoneNumber(value string) (PhoneNumber, error) {
	normalized := normalizePhone(value)
	if normalized == "" || normalized == "+" {
		return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q contains no digits", value))
	}
	return PhoneNumber{value: normalized}, nil
}

func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (p PhoneNumber) Value() string {
	return p.value
}

func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.value == other.value
}

func (p PhoneNumber) String() string {
	return p.value
}

// Validate returns an error for the zero value.
func (p PhoneNumber) Validate() error {
	if p.value == "" {
		return errs.NewValueIsRequiredError("phone must be created via NewPhoneNumber")
	}
	return nil
}
