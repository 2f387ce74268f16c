package kernel_test

import (
	"testing"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("accepts common addresses", func(t *testing.T) {
		for _, raw := range []string{
			"jane.doe@example.com",
			"jane+registry@example.co.uk",
			"j_d%42@sub.example.io",
		} {
			email, err := kernel.NewEmail(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, email.Value())
		}
	})

	t.Run("requires a value", func(t *testing.T) {
		_, err := kernel.NewEmail("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{
			"plainaddress",
			"@example.com",
			"jane@",
			"jane@example",
			"jane doe@example.com",
		} {
			_, err := kernel.NewEmail(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})

	t.Run("equality compares values", func(t *testing.T) {
		a, err := kernel.NewEmail("jane.doe@example.com")
		require.NoError(t, err)
		b, err := kernel.NewEmail("jane.doe@example.com")
		require.NoError(t, err)
		c, err := kernel.NewEmail("john.doe@example.com")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var email kernel.Email
		require.Error(t, email.Validate())
	})
}
