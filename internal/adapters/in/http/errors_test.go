package http

import (
	"errors"
	"net/http"
	"testing"

	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"NotFound", errs.NewObjectNotFoundError("customer", "CUS-1"), http.StatusNotFound},
		{"AlreadyExists", errs.NewObjectAlreadyExistsError("vehicle VIN", "1HGCM82633A004352"), http.StatusConflict},
		{"InUse", errs.NewObjectInUseError("customer", "CUS-1"), http.StatusConflict},
		{"Invalid", errs.NewValueIsInvalidError("email"), http.StatusBadRequest},
		{"Required", errs.NewValueIsRequiredError("vin"), http.StatusBadRequest},
		{"OutOfRange", errs.NewValueIsOutOfRangeError("year", 1800, 1886, 2100), http.StatusBadRequest},
		{"StateTransition", errs.NewInvalidStateTransitionError("payment", "p-1", "refund", "PENDING"), http.StatusBadRequest},
		{"ReferenceNotFound", errs.NewReferenceNotFoundError("owner", "CUS-1"), http.StatusBadRequest},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.status, statusForError(test.err))
		})
	}
}
