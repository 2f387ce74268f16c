package queries

import (
	"context"
	"database/sql"
	"errors"

	"heim/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVehicleQueryHandler retrieves the vehicle detail read model.
type GetVehicleQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleQueryHandler creates a handler for vehicle detail queries.
func NewGetVehicleQueryHandler(db *gorm.DB) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{db: db}
}

// Handle executes the detail query. Returns ObjectNotFound when no
// vehicle carries the VIN.
func (h GetVehicleQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleQuery,
) (VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		vehicleSelect+`
		WHERE vin = ?
	`, query.VIN().Value()).Row()

	response, err := scanVehicleRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VehicleResponse{}, errs.NewObjectNotFoundError(
				"vehicle", query.VIN().Value())
		}
		return VehicleResponse{}, err
	}

	return response, nil
}
