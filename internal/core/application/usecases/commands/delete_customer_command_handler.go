package commands

import (
	"context"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/ports"
)

// DeleteCustomerCommandHandler removes a customer. Vehicles owned by the
// customer keep existing with ownership cleared; transactions referencing
// the customer block the delete with ObjectInUse at the repository layer.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteCustomerCommandHandler creates a handler for customer removal.
func NewDeleteCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	publisher ports.EventPublisher,
) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the customer removal command.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()
	if _, err := customerRepo.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err := customerRepo.Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, customer.NewDeletedEvent(cmd.CustomerID().Value()))
	return nil
}
