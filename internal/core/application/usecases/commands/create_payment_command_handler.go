package commands

import (
	"context"
	"errors"

	"heim/internal/core/domain/model/payment"
	"heim/internal/pkg/errs"
)

// CreatePaymentCommandHandler records payments. The paid transaction must
// resolve; a dangling reference fails with ReferenceNotFound.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCreatePaymentCommandHandler creates a handler for recording payments.
func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment recording command and returns the
// persisted aggregate.
func (h *CreatePaymentCommandHandler) Handle(
	ctx context.Context, cmd CreatePaymentCommand,
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

	if _, err := uow.TransactionRepository().Get(ctx, cmd.TransactionID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewReferenceNotFoundErrorWithCause(
				"transaction", cmd.TransactionID().String(), err)
		}
		return nil, err
	}

	aggregate, err := payment.NewPayment(cmd.PaymentID(), cmd.TransactionID(),
		cmd.Method(), cmd.Amount(), cmd.ReferenceNumber(), cmd.Notes())
	if err != nil {
		return nil, err
	}

	paymentRepo := uow.PaymentRepository()
	if err = paymentRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
