package commands

import (
	"context"

	"heim/internal/core/domain/model/payment"
)

// CompletePaymentCommandHandler moves a payment from PENDING to
// COMPLETED. The status machine rejects the move from any other status.
type CompletePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCompletePaymentCommandHandler creates a handler for completing payments.
func NewCompletePaymentCommandHandler(uowFactory PaymentUoWFactory) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command and returns the persisted
// aggregate.
func (h *CompletePaymentCommandHandler) Handle(
	ctx context.Context, cmd CompletePaymentCommand,
) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return applyPaymentTransition(ctx, h.uowFactory, cmd.PaymentID(), (*payment.Payment).Complete)
}
