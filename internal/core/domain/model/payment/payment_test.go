package payment_test

import (
	"testing"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/payment"
	"heim/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPayment(t *testing.T) *payment.Payment {
	t.Helper()

	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
		payment.MethodCard, decimal.NewFromInt(120), "REF-001", "")
	require.NoError(t, err)
	return p
}

func buildPaymentInStatus(t *testing.T, status payment.Status) *payment.Payment {
	t.Helper()

	p, err := payment.RestorePayment(kernel.NewUUID(), kernel.NewUUID(),
		payment.MethodCard, decimal.NewFromInt(120), status, "", "",
		buildPayment(t).CreatedAt())
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		p := buildPayment(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.False(t, p.IsCompleted())
		assert.False(t, p.IsRefundable())
	})

	t.Run("rejects an unknown method", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
			payment.Method("IOU"), decimal.Zero, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
			payment.MethodCash, decimal.NewFromInt(-5), "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var p payment.Payment
		require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
	})
}

func TestPaymentLifecycle(t *testing.T) {
	t.Run("pending completes then refunds", func(t *testing.T) {
		p := buildPayment(t)

		require.NoError(t, p.Complete())
		assert.Equal(t, payment.StatusCompleted, p.Status())
		assert.True(t, p.IsCompleted())
		assert.True(t, p.IsRefundable())

		require.NoError(t, p.Refund())
		assert.Equal(t, payment.StatusRefunded, p.Status())
		assert.False(t, p.IsRefundable())
	})

	t.Run("pending cancels", func(t *testing.T) {
		p := buildPayment(t)

		require.NoError(t, p.Cancel())
		assert.Equal(t, payment.StatusCancelled, p.Status())
	})

	t.Run("rejects every transition outside the table", func(t *testing.T) {
		invalid := []struct {
			name  string
			from  payment.Status
			apply func(*payment.Payment) error
		}{
			{"complete from completed", payment.StatusCompleted, (*payment.Payment).Complete},
			{"complete from refunded", payment.StatusRefunded, (*payment.Payment).Complete},
			{"complete from cancelled", payment.StatusCancelled, (*payment.Payment).Complete},
			{"complete from failed", payment.StatusFailed, (*payment.Payment).Complete},
			{"refund from pending", payment.StatusPending, (*payment.Payment).Refund},
			{"refund from refunded", payment.StatusRefunded, (*payment.Payment).Refund},
			{"refund from cancelled", payment.StatusCancelled, (*payment.Payment).Refund},
			{"refund from failed", payment.StatusFailed, (*payment.Payment).Refund},
			{"cancel from completed", payment.StatusCompleted, (*payment.Payment).Cancel},
			{"cancel from refunded", payment.StatusRefunded, (*payment.Payment).Cancel},
			{"cancel from cancelled", payment.StatusCancelled, (*payment.Payment).Cancel},
			{"cancel from failed", payment.StatusFailed, (*payment.Payment).Cancel},
		}

		for _, tc := range invalid {
			t.Run(tc.name, func(t *testing.T) {
				p := buildPaymentInStatus(t, tc.from)

				err := tc.apply(p)

				require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
				assert.Contains(t, err.Error(), string(tc.from))
				assert.Equal(t, tc.from, p.Status(), "status must not move on a rejected transition")
			})
		}
	})
}

func TestPaymentFieldChanges(t *testing.T) {
	t.Run("field updates are allowed in terminal statuses", func(t *testing.T) {
		p := buildPaymentInStatus(t, payment.StatusRefunded)

		changed, err := p.ChangeMethod(payment.MethodWire)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = p.ChangeAmount(decimal.NewFromInt(99))
		require.NoError(t, err)
		assert.True(t, changed)

		assert.True(t, p.ChangeReferenceNumber("REF-002"))
		assert.True(t, p.ChangeNotes("chargeback settled"))
	})

	t.Run("unchanged values report no-op", func(t *testing.T) {
		p := buildPayment(t)

		changed, err := p.ChangeMethod(payment.MethodCard)
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = p.ChangeAmount(decimal.NewFromInt(120))
		require.NoError(t, err)
		assert.False(t, changed)

		assert.False(t, p.ChangeReferenceNumber("REF-001"))
		assert.False(t, p.ChangeNotes(""))
	})
}
