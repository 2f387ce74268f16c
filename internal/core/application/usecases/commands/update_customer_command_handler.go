package commands

import (
	"context"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/ports"
)

// UpdateCustomerCommandHandler applies partial profile updates. The
// updated event carries the fields that actually changed and is
// suppressed entirely when the update turned out to be a no-op.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateCustomerCommandHandler creates a handler for customer profile updates.
func NewUpdateCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	publisher ports.EventPublisher,
) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the profile update command and returns the persisted
// aggregate.
func (h *UpdateCustomerCommandHandler) Handle(
	ctx context.Context, cmd UpdateCustomerCommand,
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

	var changedFields []string

	if cmd.GivenNames() != nil || cmd.Surnames() != nil {
		givenNames := aggregate.Name().GivenNames()
		surnames := aggregate.Name().Surnames()
		if cmd.GivenNames() != nil {
			givenNames = *cmd.GivenNames()
		}
		if cmd.Surnames() != nil {
			surnames = *cmd.Surnames()
		}

		name, nameErr := kernel.NewPersonName(givenNames, surnames)
		if nameErr != nil {
			return nil, nameErr
		}

		changed, changeErr := aggregate.ChangeName(name)
		if changeErr != nil {
			return nil, changeErr
		}
		if changed {
			changedFields = append(changedFields, "name")
		}
	}

	if phone := cmd.Phone(); phone != nil {
		target := phone
		if phone.Value() == "" {
			target = nil
		}

		changed, changeErr := aggregate.ChangePhone(target)
		if changeErr != nil {
			return nil, changeErr
		}
		if changed {
			changedFields = append(changedFields, "phone")
		}
	}

	if len(changedFields) == 0 {
		return aggregate, nil
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, customer.NewUpdatedEvent(aggregate, changedFields))
	return aggregate, nil
}
