package commands

import (
	"context"

	"heim/internal/core/domain/model/vehicle"
	"heim/internal/core/ports"
)

// ChangeVehicleStatusCommandHandler moves a vehicle to a new registration
// status. Setting the current status again is accepted and publishes
// nothing.
type ChangeVehicleStatusCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
}

// NewChangeVehicleStatusCommandHandler creates a handler for status changes.
func NewChangeVehicleStatusCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
) ChangeVehicleStatusCommandHandler {
	return ChangeVehicleStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command and returns the persisted
// aggregate.
func (h *ChangeVehicleStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeVehicleStatusCommand,
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

	oldStatus := aggregate.Status()

	changed, err := aggregate.ChangeStatus(cmd.Status())
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

	h.publisher.Publish(ctx, vehicle.NewStatusChangedEvent(aggregate, oldStatus))
	return aggregate, nil
}
