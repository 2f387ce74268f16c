package commands

import (
	"context"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/ports"
)

// AddCustomerAddressCommandHandler attaches an address to a customer.
// When the new address is primary, the aggregate demotes every previously
// primary address and the whole collection persists in one transaction.
type AddCustomerAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
	publisher  ports.EventPublisher
}

// NewAddCustomerAddressCommandHandler creates a handler for address attachment.
func NewAddCustomerAddressCommandHandler(
	uowFactory CustomerUoWFactory,
	publisher ports.EventPublisher,
) AddCustomerAddressCommandHandler {
	return AddCustomerAddressCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the address attachment command and returns the
// persisted aggregate.
func (h *AddCustomerAddressCommandHandler) Handle(
	ctx context.Context, cmd AddCustomerAddressCommand,
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

	address, err := customer.NewAddress(kernel.NewUUID(),
		cmd.Line1(), cmd.Line2(), cmd.City(), cmd.StateProvince(),
		cmd.PostalCode(), cmd.Country(), cmd.AddressType(), cmd.IsPrimary())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AddAddress(address); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, customer.NewAddressAddedEvent(aggregate, address))
	return aggregate, nil
}
