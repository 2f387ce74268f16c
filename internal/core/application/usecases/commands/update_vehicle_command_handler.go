package commands

import (
	"context"

	"heim/internal/core/domain/model/vehicle"
	"heim/internal/core/ports"
)

// UpdateVehicleCommandHandler applies partial cosmetic updates. The
// updated event carries the fields that actually changed and is
// suppressed entirely when the update turned out to be a no-op.
type UpdateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle updates.
func NewUpdateVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the vehicle update command and returns the persisted
// aggregate.
func (h *UpdateVehicleCommandHandler) Handle(
	ctx context.Context, cmd UpdateVehicleCommand,
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

	var changedFields []string

	if color := cmd.Color(); color != nil {
		if aggregate.ChangeColor(*color) {
			changedFields = append(changedFields, "color")
		}
	}

	if plate := cmd.LicensePlate(); plate != nil {
		target := plate
		if plate.Value() == "" {
			target = nil
		}

		changed, changeErr := aggregate.ChangeLicensePlate(target)
		if changeErr != nil {
			return nil, changeErr
		}
		if changed {
			changedFields = append(changedFields, "license_plate")
		}
	}

	if len(changedFields) == 0 {
		return aggregate, nil
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, vehicle.NewUpdatedEvent(aggregate, changedFields))
	return aggregate, nil
}
