package errs_test

import (
	"errors"
	"testing"

	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerId", "C25001A1200001")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "C25001A1200001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: C25001A1200001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("paymentId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: paymentId, ID is: 123 (cause: record not found)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("email", "john@example.com")

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, "object already exists: email john@example.com", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key")
		err := errs.NewObjectAlreadyExistsErrorWithCause("vin", "1HGCM82633A004352", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: vin 1HGCM82633A004352 (cause: duplicated key)",
			err.Error())
	})
}

func TestObjectInUseError(t *testing.T) {
	err := errs.NewObjectInUseError("customer", "C25001A1200001")

	assert.Equal(t, "object is in use: customer C25001A1200001 is still referenced", err.Error())
	assert.Equal(t, errs.ErrObjectInUse, err.Unwrap())
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("year", 1850, 1900, 2100)

		assert.Equal(t, "year", err.ParamName)
		assert.Equal(t, 1850, err.Value)
		assert.Equal(t, "value is invalid: 1850 is year, min value is 1900, max value is 2100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("surnames")

	assert.Equal(t, "value is required: surnames", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	cause := errors.New("missing field")
	withCause := errs.NewValueIsRequiredErrorWithCause("surnames", cause)
	assert.Equal(t, "value is required: surnames (cause: missing field)", withCause.Error())
}

func TestInvalidStateTransitionError(t *testing.T) {
	t.Run("names operation and state", func(t *testing.T) {
		err := errs.NewInvalidStateTransitionError("payment", "abc", "refund", "PENDING")

		assert.Equal(t, "refund", err.Operation)
		assert.Equal(t, "PENDING", err.Current)
		assert.Equal(t,
			"invalid state transition: cannot refund payment abc in state PENDING",
			err.Error())
		assert.Equal(t, errs.ErrInvalidStateTransition, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("new mileage (40000 km) cannot be less than current mileage (50000 km)")
		err := errs.NewInvalidStateTransitionErrorWithCause(
			"vehicle", "1HGCM82633A004352", "update mileage", "50000 km", cause)

		assert.Contains(t, err.Error(), "cannot be less than")
	})
}

func TestReferenceNotFoundError(t *testing.T) {
	err := errs.NewReferenceNotFoundError("ownerId", "C25001A1200001")

	assert.Equal(t, "referenced object not found: ownerId C25001A1200001", err.Error())
	assert.Equal(t, errs.ErrReferenceNotFound, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("id", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewObjectAlreadyExistsError("email", "a@b.co"), errs.ErrObjectAlreadyExists)
	require.ErrorIs(t, errs.NewObjectInUseError("customer", "1"), errs.ErrObjectInUse)
	require.ErrorIs(t, errs.NewValueIsInvalidError("vin"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("n", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t,
		errs.NewInvalidStateTransitionError("payment", "1", "cancel", "COMPLETED"),
		errs.ErrInvalidStateTransition)
	require.ErrorIs(t, errs.NewReferenceNotFoundError("ownerId", "1"), errs.ErrReferenceNotFound)
}
