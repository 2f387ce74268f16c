package commands

import (
	"context"
	"errors"
	"time"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/ports"
	"heim/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers new customers. The customer id
// is derived from the registration timestamp; email uniqueness is
// pre-checked for a friendly error and ultimately enforced by the
// database unique constraint.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	publisher ports.EventPublisher,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the customer registration command and returns the
// persisted aggregate.
func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context, cmd CreateCustomerCommand,
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
	if _, err := customerRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return nil, errs.NewObjectAlreadyExistsError("customer email", cmd.Email().Value())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newCustomer, err := customer.NewCustomer(
		kernel.GenerateCustomerID(time.Now()), cmd.Name(), cmd.Email(), cmd.Phone())
	if err != nil {
		return nil, err
	}

	if err = customerRepo.Add(ctx, newCustomer); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, customer.NewCreatedEvent(newCustomer))
	return newCustomer, nil
}
