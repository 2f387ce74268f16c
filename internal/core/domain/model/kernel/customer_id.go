package kernel

import (
	"fmt"
	"regexp"
	"time"

	"heim/internal/pkg/errs"
)

// customerIDPattern matches the 14-character customer identifier:
// "C" + YY + DDD (day of year) + weekday letter (A=Monday..G=Sunday)
// + HH + MM + the first three digits of the microsecond field.
// Example: C25364F1435532 (2025, day 364, Saturday, 14:35, µs 532xxx).
var customerIDPattern = regexp.MustCompile(`^C\d{2}\d{3}[A-G]\d{2}\d{2}\d{3}$`)

// weekdayLetters maps Monday..Sunday to A..G.
const weekdayLetters = "ABCDEFG"

// CustomerID is the timestamp-derived identifier of a customer and
// the customer table's primary key. It is opaque to callers: once
// assigned it never changes, even though its digits happen to encode
// the creation instant.
type CustomerID struct {
	value string
}

// NewCustomerID validates an existing customer identifier.
func NewCustomerID(value string) (CustomerID, error) {
	if value == "" {
		return CustomerID{}, errs.NewValueIsRequiredError("customer id")
	}
	if !customerIDPattern.MatchString(value) {
		return CustomerID{}, errs.NewValueIsInvalidErrorWithCause("customer id",
			fmt.Errorf("%q does not match the customer id format", value))
	}
	return CustomerID{value: value}, nil
}

// GenerateCustomerID derives a fresh identifier from the given
// timestamp. All fields (year, day of year, weekday, hour, minute,
// microsecond prefix) come from the timestamp, so identifiers sort
// roughly by creation time.
func GenerateCustomerID(at time.Time) CustomerID {
	year := at.Year() % 100
	dayOfYear := at.YearDay()
	// time.Weekday has Sunday=0; the letter scheme starts at Monday.
	weekday := weekdayLetters[(int(at.Weekday())+6)%7]
	microPrefix := at.Nanosecond() / 1e3 / 1000

	value := fmt.Sprintf("C%02d%03d%c%02d%02d%03d",
		year, dayOfYear, weekday, at.Hour(), at.Minute(), microPrefix)
	return CustomerID{value: value}
}

func (c CustomerID) Value() string {
	return c.value
}

func (c CustomerID) String() string {
	return c.value
}

// Validate returns an error for the zero value.
func (c CustomerID) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError(
			"customer id must be created via NewCustomerID or GenerateCustomerID")
	}
	return nil
}

func (c CustomerID) IsEqual(other CustomerID) bool {
	return c.value == other.value
}
