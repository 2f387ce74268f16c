package commands

import (
	"context"
)

// DeleteTransactionCommandHandler removes a transaction. Payments
// referencing it block the delete with ObjectInUse at the repository
// layer.
type DeleteTransactionCommandHandler struct {
	uowFactory TransactionUoWFactory
}

// NewDeleteTransactionCommandHandler creates a handler for transaction removal.
func NewDeleteTransactionCommandHandler(uowFactory TransactionUoWFactory) DeleteTransactionCommandHandler {
	return DeleteTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transaction removal command.
func (h *DeleteTransactionCommandHandler) Handle(ctx context.Context, cmd DeleteTransactionCommand) error {
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

	transactionRepo := uow.TransactionRepository()
	if _, err := transactionRepo.Get(ctx, cmd.TransactionID()); err != nil {
		return err
	}

	if err := transactionRepo.Delete(ctx, cmd.TransactionID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
