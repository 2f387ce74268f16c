package kernel

import (
	"errors"
	"fmt"
	"strings"

	"heim/internal/pkg/errs"
	"heim/internal/pkg/guard"
)

// ErrPersonNameIsNotConstructed is returned when validating a
// zero-value PersonName.
var ErrPersonNameIsNotConstructed = errs.NewValueIsRequiredError(
	"person name must be created via NewPersonName")

// PersonName holds a person's given names and surnames. Both parts
// must be non-empty after trimming.
type PersonName struct { //nolint:recvcheck //using for validation
	givenNames string
	surnames   string

	guard guard.ConstructorGuard
}

// NewPersonName validates and wraps a person's name.
func NewPersonName(givenNames, surnames string) (PersonName, error) {
	name := PersonName{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		name.setGivenNames(givenNames),
		name.setSurnames(surnames),
	); err != nil {
		return PersonName{}, err
	}

	return name, nil
}

// Validate checks the name was created through the constructor.
func (n PersonName) Validate() error {
	return n.guard.Validate(ErrPersonNameIsNotConstructed)
}

func (n PersonName) GivenNames() string {
	return n.givenNames
}

func (n PersonName) Surnames() string {
	return n.surnames
}

// FullName returns the name in "Given Surnames" format.
func (n PersonName) FullName() string {
	return fmt.Sprintf("%s %s", n.givenNames, n.surnames)
}

// FormalName returns the name in "Surnames, Given" format, the natural
// sort order for customer listings.
func (n PersonName) FormalName() string {
	return fmt.Sprintf("%s, %s", n.surnames, n.givenNames)
}

func (n PersonName) String() string {
	return n.FullName()
}

// IsEqual compares both name parts.
func (n PersonName) IsEqual(other PersonName) bool {
	return n.givenNames == other.givenNames && n.surnames == other.surnames
}

func (n *PersonName) setGivenNames(givenNames string) error {
	trimmed := strings.TrimSpace(givenNames)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("given names")
	}
	n.givenNames = trimmed
	return nil
}

func (n *PersonName) setSurnames(surnames string) error {
	trimmed := strings.TrimSpace(surnames)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("surnames")
	}
	n.surnames = trimmed
	return nil
}
