package transaction_test

import (
	"testing"
	"time"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/transaction"
	"heim/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feeOf(t *testing.T, value string) *decimal.Decimal {
	t.Helper()
	fee, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return &fee
}

func buildTransaction(t *testing.T, fees ...*decimal.Decimal) *transaction.Transaction {
	t.Helper()

	var registration, title, processing *decimal.Decimal
	if len(fees) > 0 {
		registration = fees[0]
	}
	if len(fees) > 1 {
		title = fees[1]
	}
	if len(fees) > 2 {
		processing = fees[2]
	}

	vin, err := kernel.NewVIN("1HGCM82633A004352")
	require.NoError(t, err)

	tx, err := transaction.NewTransaction(
		kernel.NewUUID(),
		kernel.GenerateCustomerID(time.Now()),
		vin,
		transaction.TypeRenewal,
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(120),
		registration, title, processing,
	)
	require.NoError(t, err)
	return tx
}

func TestNewTransaction(t *testing.T) {
	t.Run("creates a valid transaction", func(t *testing.T) {
		tx := buildTransaction(t)

		require.NoError(t, tx.Validate())
		assert.Equal(t, transaction.TypeRenewal, tx.Type())
		assert.True(t, tx.Amount().Equal(decimal.NewFromInt(120)))
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		vin, err := kernel.NewVIN("1HGCM82633A004352")
		require.NoError(t, err)

		_, err = transaction.NewTransaction(kernel.NewUUID(),
			kernel.GenerateCustomerID(time.Now()), vin,
			transaction.Type("VOID"), time.Now(), decimal.Zero, nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		vin, err := kernel.NewVIN("1HGCM82633A004352")
		require.NoError(t, err)

		_, err = transaction.NewTransaction(kernel.NewUUID(),
			kernel.GenerateCustomerID(time.Now()), vin,
			transaction.TypeRenewal, time.Now(), decimal.NewFromInt(-1), nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a zero date", func(t *testing.T) {
		vin, err := kernel.NewVIN("1HGCM82633A004352")
		require.NoError(t, err)

		_, err = transaction.NewTransaction(kernel.NewUUID(),
			kernel.GenerateCustomerID(time.Now()), vin,
			transaction.TypeRenewal, time.Time{}, decimal.Zero, nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var tx transaction.Transaction
		require.ErrorIs(t, tx.Validate(), transaction.ErrTransactionIsNotConstructed)
	})
}

func TestTotalFees(t *testing.T) {
	t.Run("sums the present fees", func(t *testing.T) {
		tx := buildTransaction(t, feeOf(t, "45.50"), nil, feeOf(t, "4.25"))

		assert.True(t, tx.TotalFees().Equal(decimal.RequireFromString("49.75")))
	})

	t.Run("no fees totals zero", func(t *testing.T) {
		tx := buildTransaction(t)

		assert.True(t, tx.TotalFees().IsZero())
	})
}

func TestTransactionChanges(t *testing.T) {
	t.Run("type change reports no-op when equal", func(t *testing.T) {
		tx := buildTransaction(t)

		changed, err := tx.ChangeType(transaction.TypeRenewal)
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = tx.ChangeType(transaction.TypeInspection)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("fee change sets, keeps and clears", func(t *testing.T) {
		tx := buildTransaction(t)

		changed, err := tx.ChangeTitleFee(feeOf(t, "15.00"))
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = tx.ChangeTitleFee(feeOf(t, "15.00"))
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = tx.ChangeTitleFee(nil)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Nil(t, tx.TitleFee())
	})

	t.Run("rejects a negative fee", func(t *testing.T) {
		tx := buildTransaction(t)

		_, err := tx.ChangeProcessingFee(feeOf(t, "-3"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
