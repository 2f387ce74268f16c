package commands

import (
	"context"

	"heim/internal/core/domain/model/payment"
)

// RefundPaymentCommandHandler moves a payment from COMPLETED to REFUNDED.
// Only completed payments are refundable.
type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRefundPaymentCommandHandler creates a handler for refunding payments.
func NewRefundPaymentCommandHandler(uowFactory PaymentUoWFactory) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund command and returns the persisted aggregate.
func (h *RefundPaymentCommandHandler) Handle(
	ctx context.Context, cmd RefundPaymentCommand,
) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return applyPaymentTransition(ctx, h.uowFactory, cmd.PaymentID(), (*payment.Payment).Refund)
}
