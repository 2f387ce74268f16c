package kernel_test

import (
	"testing"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLicensePlate(t *testing.T) {
	t.Run("uppercases and trims the plate", func(t *testing.T) {
		plate, err := kernel.NewLicensePlate("  abc-123 ", "on")

		require.NoError(t, err)
		assert.Equal(t, "ABC-123", plate.Value())
		assert.Equal(t, "on", plate.StateProvince())
	})

	t.Run("rejects a blank plate", func(t *testing.T) {
		_, err := kernel.NewLicensePlate("   ", "ON")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("renders with state when known", func(t *testing.T) {
		plate, err := kernel.NewLicensePlate("ABC123", "ON")
		require.NoError(t, err)
		assert.Equal(t, "ABC123 (ON)", plate.FullPlate())

		bare, err := kernel.NewLicensePlate("ABC123", "")
		require.NoError(t, err)
		assert.Equal(t, "ABC123", bare.FullPlate())
	})
}
