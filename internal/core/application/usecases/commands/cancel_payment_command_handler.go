package commands

import (
	"context"

	"heim/internal/core/domain/model/payment"
)

// CancelPaymentCommandHandler moves a payment from PENDING to CANCELLED.
// Completed payments can no longer be cancelled, only refunded.
type CancelPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCancelPaymentCommandHandler creates a handler for cancelling payments.
func NewCancelPaymentCommandHandler(uowFactory PaymentUoWFactory) CancelPaymentCommandHandler {
	return CancelPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command and returns the persisted
// aggregate.
func (h *CancelPaymentCommandHandler) Handle(
	ctx context.Context, cmd CancelPaymentCommand,
) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return applyPaymentTransition(ctx, h.uowFactory, cmd.PaymentID(), (*payment.Payment).Cancel)
}
