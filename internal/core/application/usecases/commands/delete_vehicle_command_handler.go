package commands

import (
	"context"

	"heim/internal/core/domain/model/vehicle"
	"heim/internal/core/ports"
)

// DeleteVehicleCommandHandler removes a vehicle. Transactions referencing
// the VIN block the delete with ObjectInUse at the repository layer.
type DeleteVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle removal.
func NewDeleteVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the vehicle removal command.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	if _, err := vehicleRepo.Get(ctx, cmd.VIN()); err != nil {
		return err
	}

	if err := vehicleRepo.Delete(ctx, cmd.VIN()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, vehicle.NewDeletedEvent(cmd.VIN().Value()))
	return nil
}
