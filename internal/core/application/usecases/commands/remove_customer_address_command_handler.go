package commands

import (
	"context"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/ports"
)

// RemoveCustomerAddressCommandHandler detaches an address from a
// customer. Removing an address the customer does not have is a no-op
// that publishes nothing.
type RemoveCustomerAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
	publisher  ports.EventPublisher
}

// NewRemoveCustomerAddressCommandHandler creates a handler for address removal.
func NewRemoveCustomerAddressCommandHandler(
	uowFactory CustomerUoWFactory,
	publisher ports.EventPublisher,
) RemoveCustomerAddressCommandHandler {
	return RemoveCustomerAddressCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the address removal command and returns the persisted
// aggregate.
func (h *RemoveCustomerAddressCommandHandler) Handle(
	ctx context.Context, cmd RemoveCustomerAddressCommand,
) (*customer.Customer, error) {
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

	customerRepo := uow.CustomerRepository()
	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if removed := aggregate.RemoveAddress(cmd.AddressID()); !removed {
		return aggregate, nil
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, customer.NewAddressRemovedEvent(aggregate, cmd.AddressID().String()))
	return aggregate, nil
}
