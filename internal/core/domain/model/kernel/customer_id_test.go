package kernel_test

import (
	"testing"
	"time"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerID(t *testing.T) {
	t.Run("accepts well-formed id", func(t *testing.T) {
		id, err := kernel.NewCustomerID("C25364F1435532")

		require.NoError(t, err)
		assert.Equal(t, "C25364F1435532", id.Value())
		require.NoError(t, id.Validate())
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"X25364F1435532", // wrong prefix
			"C25364H1435532", // weekday letter out of A..G
			"C25364F143553",  // too short
			"C25364F14355321", // too long
			"C25364F1435532a", // trailing garbage
		} {
			_, err := kernel.NewCustomerID(raw)
			require.Error(t, err, raw)
		}
	})

	t.Run("rejects with invalid-value kind", func(t *testing.T) {
		_, err := kernel.NewCustomerID("not-an-id-at-all")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGenerateCustomerID(t *testing.T) {
	t.Run("derives every field from the timestamp", func(t *testing.T) {
		// 2025-12-30 is a Tuesday (letter B), day of year 364.
		at := time.Date(2025, 12, 30, 14, 35, 12, 532_000_000, time.UTC)

		id := kernel.GenerateCustomerID(at)

		assert.Equal(t, "C25364B1435532", id.Value())
	})

	t.Run("monday maps to A and sunday to G", func(t *testing.T) {
		monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
		sunday := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, byte('A'), kernel.GenerateCustomerID(monday).Value()[6])
		assert.Equal(t, byte('G'), kernel.GenerateCustomerID(sunday).Value()[6])
	})

	t.Run("generated ids revalidate", func(t *testing.T) {
		id := kernel.GenerateCustomerID(time.Now())

		parsed, err := kernel.NewCustomerID(id.Value())
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(id))
	})
}
