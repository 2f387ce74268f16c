package commands

import (
	"context"

	"heim/internal/core/domain/model/vehicle"
	"heim/internal/core/ports"
)

// UpdateVehicleMileageCommandHandler records odometer readings. The
// aggregate rejects readings below the stored mileage; a reading equal to
// the stored mileage is accepted and publishes nothing.
type UpdateVehicleMileageCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateVehicleMileageCommandHandler creates a handler for odometer updates.
func NewUpdateVehicleMileageCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
) UpdateVehicleMileageCommandHandler {
	return UpdateVehicleMileageCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the odometer update command and returns the persisted
// aggregate.
func (h *UpdateVehicleMileageCommandHandler) Handle(
	ctx context.Context, cmd UpdateVehicleMileageCommand,
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
	aggregate, err := vehicleRepo.Get(ctx, cmd.VIN())
	if err != nil {
		return nil, err
	}

	changed, err := aggregate.UpdateMileage(cmd.Mileage())
	if err != nil {
		return nil, err
	}
	if !changed {
		return aggregate, nil
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, vehicle.NewMileageUpdatedEvent(aggregate))
	return aggregate, nil
}
