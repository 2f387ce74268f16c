package commands

import (
	"context"
)

// DeletePaymentCommandHandler removes a payment record, whatever its
// status.
type DeletePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewDeletePaymentCommandHandler creates a handler for payment removal.
func NewDeletePaymentCommandHandler(uowFactory PaymentUoWFactory) DeletePaymentCommandHandler {
	return DeletePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment removal command.
func (h *DeletePaymentCommandHandler) Handle(ctx context.Context, cmd DeletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	if _, err := paymentRepo.Get(ctx, cmd.PaymentID()); err != nil {
		return err
	}

	if err := paymentRepo.Delete(ctx, cmd.PaymentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
