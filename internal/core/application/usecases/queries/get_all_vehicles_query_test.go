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

func TestNewGetAllVehiclesQuery_NoFilters(t *testing.T) {
	query, err := queries.NewGetAllVehiclesQuery("", nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.Search())
	assert.Nil(t, query.OwnerID())
}

func TestNewGetAllVehiclesQuery_TrimsSearch(t *testing.T) {
	query, err := queries.NewGetAllVehiclesQuery("  accord  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "accord", query.Search())
}

func TestNewGetAllVehiclesQuery_WithOwnerFilter(t *testing.T) {
	ownerID := kernel.GenerateCustomerID(time.Now())

	query, err := queries.NewGetAllVehiclesQuery("", &ownerID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OwnerID().IsEqual(ownerID))
}

func TestNewGetAllVehiclesQuery_InvalidOwnerFilter(t *testing.T) {
	var zeroID kernel.CustomerID

	_, err := queries.NewGetAllVehiclesQuery("", &zeroID)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetAllVehiclesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllVehiclesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllVehiclesQueryIsNotConstructed)
}
