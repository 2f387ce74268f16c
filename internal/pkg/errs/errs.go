package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Callers classify failures with errors.Is against
// these; the concrete error types below carry the details.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrObjectAlreadyExists    = errors.New("object already exists")
	ErrObjectInUse            = errors.New("object is in use")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrReferenceNotFound      = errors.New("referenced object not found")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError is returned when an object cannot be found by
// the given identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError is returned when a uniqueness constraint is
// violated (duplicate email, duplicate VIN). The repository layer
// raises it for database unique-index conflicts, making the database
// the authoritative check.
type ObjectAlreadyExistsError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, value any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, value any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.Value))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ObjectInUseError is returned when a deletion is blocked because
// other objects still reference the target (protect-on-delete).
type ObjectInUseError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectInUseError(paramName string, id any) *ObjectInUseError {
	return &ObjectInUseError{ParamName: paramName, ID: id}
}

func NewObjectInUseErrorWithCause(paramName string, id any, cause error) *ObjectInUseError {
	return &ObjectInUseError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectInUseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s is still referenced (cause: %s)",
			ErrObjectInUse, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s is still referenced", ErrObjectInUse, e.ParamName, sanitize(e.ID))
}

func (e *ObjectInUseError) Unwrap() error {
	return ErrObjectInUse
}

// ValueIsInvalidError is returned when a value does not satisfy its
// format or validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value falls
// outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateTransitionError is returned when a lifecycle operation
// is attempted from a state that forbids it, naming both the attempted
// operation and the current state.
type InvalidStateTransitionError struct {
	ParamName string
	ID        any
	Operation string
	Current   string
	Cause     error
}

func NewInvalidStateTransitionError(paramName string, id any, operation, current string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{ParamName: paramName, ID: id, Operation: operation, Current: current}
}

func NewInvalidStateTransitionErrorWithCause(
	paramName string, id any, operation, current string, cause error,
) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		ParamName: paramName, ID: id, Operation: operation, Current: current, Cause: cause,
	}
}

func (e *InvalidStateTransitionError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s %s %s in state %s",
		ErrInvalidStateTransition, e.Operation, e.ParamName, sanitize(e.ID), e.Current)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// ReferenceNotFoundError is returned when a command names a foreign
// aggregate that does not resolve (e.g., transferring a vehicle to an
// unknown customer). Distinct from ObjectNotFoundError, which refers
// to the aggregate the operation is addressed to.
type ReferenceNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewReferenceNotFoundError(paramName string, id any) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{ParamName: paramName, ID: id}
}

func NewReferenceNotFoundErrorWithCause(paramName string, id any, cause error) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ReferenceNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %s)",
			ErrReferenceNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrReferenceNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ReferenceNotFoundError) Unwrap() error {
	return ErrReferenceNotFound
}
