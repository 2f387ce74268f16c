package queries

import (
	"errors"
	"strings"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
	"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
)

// GetAllVehiclesQuery retrieves vehicle listings, optionally narrowed by
// a case-insensitive search over VIN, make, model and plate, or to one
// owner.
type GetAllVehiclesQuery struct {
	search  string
	ownerID *kernel.CustomerID

	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query to list vehicles. An empty
// search returns the whole registry; the owner filter is optional.
func NewGetAllVehiclesQuery(search string, ownerID *kernel.CustomerID) (GetAllVehiclesQuery, error) {
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return GetAllVehiclesQuery{}, err
		}
	}

	return GetAllVehiclesQuery{
		search:  strings.TrimSpace(search),
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// Search returns the optional search text, empty when listing all.
func (q GetAllVehiclesQuery) Search() string {
	return q.search
}

// OwnerID returns the optional owner filter, nil when absent.
func (q GetAllVehiclesQuery) OwnerID() *kernel.CustomerID {
	return q.ownerID
}

// VehicleResponse represents one vehicle row in the read model. It is
// shared by the listing and detail queries, which read the same columns.
type VehicleResponse struct {
	VIN              string
	Make             string
	Model            string
	Year             int
	Color            string
	FuelType         string
	Transmission     string
	EngineCapacityCC *int
	MileageKm        int
	PlateNumber      *string
	PlateState       *string
	OwnerID          *string
	Status           string
}
