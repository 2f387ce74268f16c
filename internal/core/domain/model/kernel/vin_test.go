package kernel_test

import (
	"testing"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVIN(t *testing.T) {
	t.Run("accepts valid 17-character VIN", func(t *testing.T) {
		vin, err := kernel.NewVIN("1HGCM82633A004352")

		require.NoError(t, err)
		assert.Equal(t, "1HGCM82633A004352", vin.Value())
		require.NoError(t, vin.Validate())
	})

	t.Run("uppercases and strips separators", func(t *testing.T) {
		vin, err := kernel.NewVIN("1hgcm-8263 3a004352")

		require.NoError(t, err)
		assert.Equal(t, "1HGCM82633A004352", vin.Value())
	})

	t.Run("normalization is idempotent", func(t *testing.T) {
		first, err := kernel.NewVIN("1hgcm82633a004352")
		require.NoError(t, err)

		second, err := kernel.NewVIN(first.Value())
		require.NoError(t, err)
		assert.True(t, first.IsEqual(second))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := kernel.NewVIN("1HGCM82633A00435")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects forbidden letters I O Q", func(t *testing.T) {
		for _, raw := range []string{
			"IHGCM82633A004352",
			"OHGCM82633A004352",
			"QHGCM82633A004352",
		} {
			_, err := kernel.NewVIN(raw)
			require.Error(t, err, raw)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var vin kernel.VIN
		require.Error(t, vin.Validate())
	})
}
