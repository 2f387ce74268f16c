package http

import (
	"net/http"

	"heim/internal/core/application/usecases/commands"
	"heim/internal/core/application/usecases/queries"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// GetVehicles handles GET /api/v1/vehicles. An optional search
// parameter narrows the list by VIN, make, model or plate number; an
// optional ownerId narrows it to one customer's vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	ownerID, err := optionalCustomerIDParam(ctx.QueryParam("ownerId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetAllVehiclesQuery(ctx.QueryParam("search"), ownerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicles, err := s.handlers.GetAllVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		response[i] = vehicleFromQuery(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVehicle handles GET /api/v1/vehicles/:vin.
func (s *Server) GetVehicle(ctx echo.Context) error {
	vin, err := kernel.NewVIN(ctx.Param("vin"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetVehicleQuery(vin)
	if err != nil {
		return errorResponse(ctx, err)
	}

	found, err := s.handlers.GetVehicle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleFromQuery(found))
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var request createVehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	vin, err := kernel.NewVIN(request.VIN)
	if err != nil {
		return errorResponse(ctx, err)
	}

	mileage, err := mileageFromRequest(request.Mileage)
	if err != nil {
		return errorResponse(ctx, err)
	}

	licensePlate, err := optionalPlate(request.PlateNumber, request.PlateState)
	if err != nil {
		return errorResponse(ctx, err)
	}

	ownerID, err := optionalCustomerID(request.OwnerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateVehicleCommand(
		vin,
		request.Make, request.Model,
		request.Year,
		request.Color,
		vehicle.FuelType(request.FuelType),
		vehicle.Transmission(request.Transmission),
		request.EngineCapacityCC,
		mileage,
		licensePlate,
		ownerID,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.handlers.CreateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, vehicleFromDomain(created))
}

// UpdateVehicle handles PATCH /api/v1/vehicles/:vin. Absent fields are
// left untouched; an empty plate number clears the stored plate.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	vin, err := kernel.NewVIN(ctx.Param("vin"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request updateVehicleRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	licensePlate, err := tristatePlate(request.PlateNumber, request.PlateState)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateVehicleCommand(vin, request.Color, licensePlate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.UpdateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleFromDomain(updated))
}

// UpdateVehicleMileage handles PUT /api/v1/vehicles/:vin/mileage.
func (s *Server) UpdateVehicleMileage(ctx echo.Context) error {
	vin, err := kernel.NewVIN(ctx.Param("vin"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request mileageRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	mileage, err := mileageFromRequest(request)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateVehicleMileageCommand(vin, mileage)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.UpdateVehicleMileage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleFromDomain(updated))
}

// TransferVehicleOwnership handles PUT /api/v1/vehicles/:vin/owner.
// A missing or empty ownerId releases the vehicle from its owner.
func (s *Server) TransferVehicleOwnership(ctx echo.Context) error {
	vin, err := kernel.NewVIN(ctx.Param("vin"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request transferVehicleOwnershipRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	ownerID, err := optionalCustomerID(request.OwnerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewTransferVehicleOwnershipCommand(vin, ownerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.TransferVehicleOwnership.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleFromDomain(updated))
}

// ChangeVehicleStatus handles PUT /api/v1/vehicles/:vin/status.
func (s *Server) ChangeVehicleStatus(ctx echo.Context) error {
	vin, err := kernel.NewVIN(ctx.Param("vin"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request changeVehicleStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeVehicleStatusCommand(vin, vehicle.Status(request.Status))
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.ChangeVehicleStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleFromDomain(updated))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:vin.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	vin, err := kernel.NewVIN(ctx.Param("vin"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(vin)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// mileageFromRequest builds a mileage reading, defaulting the unit to
// kilometers when the request omits it.
func mileageFromRequest(request mileageRequest) (kernel.Mileage, error) {
	unit := kernel.MileageUnit(request.Unit)
	if request.Unit == "" {
		unit = kernel.Kilometers
	}
	return kernel.NewMileage(request.Value, unit)
}

// optionalPlate builds a license plate from create request fields:
// a missing or empty plate number means no plate.
func optionalPlate(number, state *string) (*kernel.LicensePlate, error) {
	if number == nil || *number == "" {
		return nil, nil
	}

	plateState := ""
	if state != nil {
		plateState = *state
	}

	plate, err := kernel.NewLicensePlate(*number, plateState)
	if err != nil {
		return nil, err
	}
	return &plate, nil
}

// tristatePlate builds a license plate from update request fields:
// a nil plate number leaves the stored plate untouched, an empty one
// clears it.
func tristatePlate(number, state *string) (*kernel.LicensePlate, error) {
	if number == nil {
		return nil, nil
	}
	if *number == "" {
		return &kernel.LicensePlate{}, nil
	}
	return optionalPlate(number, state)
}

// optionalCustomerID parses a customer identifier from an optional
// request field: nil or empty means no customer.
func optionalCustomerID(raw *string) (*kernel.CustomerID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	customerID, err := kernel.NewCustomerID(*raw)
	if err != nil {
		return nil, err
	}
	return &customerID, nil
}
