package commands

import (
	"context"

	"heim/internal/core/domain/model/payment"
)

// UpdatePaymentCommandHandler applies partial bookkeeping updates to a
// payment, in any status.
type UpdatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewUpdatePaymentCommandHandler creates a handler for payment updates.
func NewUpdatePaymentCommandHandler(uowFactory PaymentUoWFactory) UpdatePaymentCommandHandler {
	return UpdatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment update command and returns the persisted
// aggregate.
func (h *UpdatePaymentCommandHandler) Handle(
	ctx context.Context, cmd UpdatePaymentCommand,
) (*payment.Payment, error) {
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

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}

	anyChanged := false

	if method := cmd.Method(); method != nil {
		changed, changeErr := aggregate.ChangeMethod(*method)
		if changeErr != nil {
			return nil, changeErr
		}
		anyChanged = anyChanged || changed
	}

	if amount := cmd.Amount(); amount != nil {
		changed, changeErr := aggregate.ChangeAmount(*amount)
		if changeErr != nil {
			return nil, changeErr
		}
		anyChanged = anyChanged || changed
	}

	if referenceNumber := cmd.ReferenceNumber(); referenceNumber != nil {
		anyChanged = aggregate.ChangeReferenceNumber(*referenceNumber) || anyChanged
	}

	if notes := cmd.Notes(); notes != nil {
		anyChanged = aggregate.ChangeNotes(*notes) || anyChanged
	}

	if !anyChanged {
		return aggregate, nil
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
