package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetAllVehiclesQueryHandler lists vehicles, newest model year first.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for vehicle listings.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := vehicleSelect + `
		WHERE 1 = 1
	`
	args := make([]any, 0, 5)
	if search := query.Search(); search != "" {
		sqlQuery += `
		AND (LOWER(vin) LIKE LOWER(?)
			OR LOWER(make) LIKE LOWER(?)
			OR LOWER(model) LIKE LOWER(?)
			OR LOWER(plate_number) LIKE LOWER(?))
		`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if ownerID := query.OwnerID(); ownerID != nil {
		sqlQuery += `
		AND owner_id = ?
		`
		args = append(args, ownerID.Value())
	}
	sqlQuery += `
		ORDER BY year DESC, make, model
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]VehicleResponse, 0)
	for rows.Next() {
		row, scanErr := scanVehicleRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		vehicles = append(vehicles, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

const vehicleSelect = `
		SELECT
			vin,
			make,
			model,
			year,
			color,
			fuel_type,
			transmission,
			engine_capacity_cc,
			mileage_km,
			plate_number,
			plate_state,
			owner_id,
			status
		FROM vehicles
`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicleRow(scanner rowScanner) (VehicleResponse, error) {
	var row VehicleResponse
	var engineCapacity sql.NullInt64
	var plateNumber, plateState, ownerID sql.NullString

	if err := scanner.Scan(
		&row.VIN,
		&row.Make,
		&row.Model,
		&row.Year,
		&row.Color,
		&row.FuelType,
		&row.Transmission,
		&engineCapacity,
		&row.MileageKm,
		&plateNumber,
		&plateState,
		&ownerID,
		&row.Status,
	); err != nil {
		return VehicleResponse{}, err
	}

	if engineCapacity.Valid {
		capacity := int(engineCapacity.Int64)
		row.EngineCapacityCC = &capacity
	}
	if plateNumber.Valid {
		row.PlateNumber = &plateNumber.String
	}
	if plateState.Valid {
		row.PlateState = &plateState.String
	}
	if ownerID.Valid {
		row.OwnerID = &ownerID.String
	}

	return row, nil
}
