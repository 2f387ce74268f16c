package commands

import (
	"context"
	"errors"

	"heim/internal/core/domain/model/vehicle"
	"heim/internal/core/ports"
	"heim/internal/pkg/errs"
)

// TransferVehicleOwnershipCommandHandler moves a vehicle to a new owner.
// The target customer must resolve; transferring to the current owner is
// accepted and publishes nothing.
type TransferVehicleOwnershipCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
}

// NewTransferVehicleOwnershipCommandHandler creates a handler for
// ownership transfers.
func NewTransferVehicleOwnershipCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
) TransferVehicleOwnershipCommandHandler {
	return TransferVehicleOwnershipCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the ownership transfer command and returns the
// persisted aggregate.
func (h *TransferVehicleOwnershipCommandHandler) Handle(
	ctx context.Context, cmd TransferVehicleOwnershipCommand,
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

	if newOwnerID := cmd.NewOwnerID(); newOwnerID != nil {
		if _, lookupErr := uow.CustomerRepository().Get(ctx, *newOwnerID); lookupErr != nil {
			if errors.Is(lookupErr, errs.ErrObjectNotFound) {
				return nil, errs.NewReferenceNotFoundErrorWithCause(
					"new owner", newOwnerID.Value(), lookupErr)
			}
			return nil, lookupErr
		}
	}

	var oldOwnerID *string
	if owner := aggregate.Owner(); owner != nil {
		id := owner.Value()
		oldOwnerID = &id
	}

	changed, err := aggregate.TransferOwnership(cmd.NewOwnerID())
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

	h.publisher.Publish(ctx, vehicle.NewOwnerChangedEvent(aggregate, oldOwnerID))
	return aggregate, nil
}
