package commands

import (
	"context"
	"errors"

	"heim/internal/core/domain/model/vehicle"
	"heim/internal/core/ports"
	"heim/internal/pkg/errs"
)

// CreateVehicleCommandHandler registers new vehicles. VIN uniqueness is
// pre-checked for a friendly error and ultimately enforced by the
// database; an owner reference that does not resolve fails with
// ReferenceNotFound.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the vehicle registration command and returns the
// persisted aggregate.
func (h *CreateVehicleCommandHandler) Handle(
	ctx context.Context, cmd CreateVehicleCommand,
) (*vehicle.MotorVehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	if _, err := vehicleRepo.Get(ctx, cmd.VIN()); err == nil {
		return nil, errs.NewObjectAlreadyExistsError("vehicle VIN", cmd.VIN().Value())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if ownerID := cmd.OwnerID(); ownerID != nil {
		if _, err := uow.CustomerRepository().Get(ctx, *ownerID); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewReferenceNotFoundErrorWithCause(
					"owner", ownerID.Value(), err)
			}
			return nil, err
		}
	}

	aggregate, err := vehicle.NewMotorVehicle(cmd.VIN(), cmd.Make(), cmd.Model(),
		cmd.Year(), cmd.Color(), cmd.FuelType(), cmd.Transmission(),
		cmd.EngineCapacityCC(), cmd.Mileage(), cmd.LicensePlate(), cmd.OwnerID())
	if err != nil {
		return nil, err
	}

	if err = vehicleRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, vehicle.NewCreatedEvent(aggregate))
	return aggregate, nil
}
