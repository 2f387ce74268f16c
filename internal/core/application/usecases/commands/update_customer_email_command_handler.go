package commands

import (
	"context"
	"errors"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/ports"
	"heim/internal/pkg/errs"
)

// UpdateCustomerEmailCommandHandler changes a customer's email. Setting
// the current email again is a no-op that publishes nothing; taking
// another customer's email fails with ObjectAlreadyExists.
type UpdateCustomerEmailCommandHandler struct {
	uowFactory CustomerUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateCustomerEmailCommandHandler creates a handler for email changes.
func NewUpdateCustomerEmailCommandHandler(
	uowFactory CustomerUoWFactory,
	publisher ports.EventPublisher,
) UpdateCustomerEmailCommandHandler {
	return UpdateCustomerEmailCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the email change command and returns the persisted
// aggregate.
func (h *UpdateCustomerEmailCommandHandler) Handle(
	ctx context.Context, cmd UpdateCustomerEmailCommand,
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

	oldEmail := aggregate.Email().Value()

	if holder, lookupErr := customerRepo.GetByEmail(ctx, cmd.Email()); lookupErr == nil {
		if !holder.IsEqual(aggregate) {
			return nil, errs.NewObjectAlreadyExistsError("customer email", cmd.Email().Value())
		}
	} else if !errors.Is(lookupErr, errs.ErrObjectNotFound) {
		return nil, lookupErr
	}

	changed, err := aggregate.ChangeEmail(cmd.Email())
	if err != nil {
		return nil, err
	}
	if !changed {
		return aggregate, nil
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, customer.NewEmailChangedEvent(aggregate, oldEmail))
	return aggregate, nil
}
