package kernel

import (
	"fmt"
	"regexp"

	"heim/internal/pkg/errs"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a validated email address. Case is preserved as entered;
// uniqueness across customers is enforced at the persistence layer.
type Email struct {
	value string
}

// NewEmail validates and wraps an email address.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(value) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q does not match the expected format", value))
	}
	return Email{value: value}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

// Validate returns an error for the zero value.
func (e Email) Validate() error {
	if e.value == "" {
		return errs.NewValueIsRequiredError("email must be created via NewEmail")
	}
	return nil
}

func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}
