package kernel_test

import (
	"testing"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMileage(t *testing.T) {
	t.Run("accepts non-negative kilometers", func(t *testing.T) {
		m, err := kernel.NewMileage(50000, kernel.Kilometers)

		require.NoError(t, err)
		assert.Equal(t, 50000, m.Value())
		assert.Equal(t, kernel.Kilometers, m.Unit())
		require.NoError(t, m.Validate())
	})

	t.Run("accepts zero", func(t *testing.T) {
		m, err := kernel.NewMileage(0, kernel.Miles)

		require.NoError(t, err)
		assert.Equal(t, 0, m.InKilometers())
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := kernel.NewMileage(-1, kernel.Kilometers)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown unit", func(t *testing.T) {
		_, err := kernel.NewMileage(100, kernel.MileageUnit("furlongs"))

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Mileage
		require.Error(t, m.Validate())
	})
}

func TestMileageConversion(t *testing.T) {
	t.Run("miles convert to kilometers truncated", func(t *testing.T) {
		m, err := kernel.NewMileage(100, kernel.Miles)

		require.NoError(t, err)
		assert.Equal(t, 160, m.InKilometers()) // 160.934 truncated
		assert.Equal(t, 100, m.InMiles())
	})

	t.Run("kilometers convert to miles truncated", func(t *testing.T) {
		m, err := kernel.NewMileage(100, kernel.Kilometers)

		require.NoError(t, err)
		assert.Equal(t, 62, m.InMiles()) // 62.1371 truncated
		assert.Equal(t, 100, m.InKilometers())
	})

	t.Run("round trip never gains distance", func(t *testing.T) {
		for _, km := range []int{0, 1, 99, 1000, 50000, 123456} {
			m, err := kernel.NewMileage(km, kernel.Kilometers)
			require.NoError(t, err)

			back, err := kernel.NewMileage(m.InMiles(), kernel.Miles)
			require.NoError(t, err)
			assert.LessOrEqual(t, back.InKilometers(), km)
		}
	})
}
