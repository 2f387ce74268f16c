package queries_test

import (
	"testing"
	"time"

	"heim/internal/core/application/usecases/queries"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllTransactionsQuery_NoFilters(t *testing.T) {
	query, err := queries.NewGetAllTransactionsQuery(nil, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.CustomerID())
	assert.Nil(t, query.VIN())
}

func TestNewGetAllTransactionsQuery_WithFilters(t *testing.T) {
	customerID := kernel.GenerateCustomerID(time.Now())
	vin, err := kernel.NewVIN("1HGCM82633A004352")
	require.NoError(t, err)

	query, err := queries.NewGetAllTransactionsQuery(&customerID, &vin)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.CustomerID().IsEqual(customerID))
	assert.True(t, query.VIN().IsEqual(vin))
}

func TestNewGetAllTransactionsQuery_InvalidFilter(t *testing.T) {
	var zeroVIN kernel.VIN

	_, err := queries.NewGetAllTransactionsQuery(nil, &zeroVIN)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetAllTransactionsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllTransactionsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllTransactionsQueryIsNotConstructed)
}
