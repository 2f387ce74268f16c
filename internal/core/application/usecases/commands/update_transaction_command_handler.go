package commands

import (
	"context"

	"heim/internal/core/domain/model/transaction"

	"github.com/shopspring/decimal"
)

// UpdateTransactionCommandHandler applies partial transaction updates.
// A fee field pointing at zero clears the stored fee.
type UpdateTransactionCommandHandler struct {
	uowFactory TransactionUoWFactory
}

// NewUpdateTransactionCommandHandler creates a handler for transaction updates.
func NewUpdateTransactionCommandHandler(uowFactory TransactionUoWFactory) UpdateTransactionCommandHandler {
	return UpdateTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transaction update command and returns the
// persisted entity.
func (h *UpdateTransactionCommandHandler) Handle(
	ctx context.Context, cmd UpdateTransactionCommand,
) (*transaction.Transaction, error) {
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

	transactionRepo := uow.TransactionRepository()
	entity, err := transactionRepo.Get(ctx, cmd.TransactionID())
	if err != nil {
		return nil, err
	}

	anyChanged := false

	if transactionType := cmd.Type(); transactionType != nil {
		changed, changeErr := entity.ChangeType(*transactionType)
		if changeErr != nil {
			return nil, changeErr
		}
		anyChanged = anyChanged || changed
	}

	if date := cmd.Date(); date != nil {
		changed, changeErr := entity.ChangeDate(*date)
		if changeErr != nil {
			return nil, changeErr
		}
		anyChanged = anyChanged || changed
	}

	if amount := cmd.Amount(); amount != nil {
		changed, changeErr := entity.ChangeAmount(*amount)
		if changeErr != nil {
			return nil, changeErr
		}
		anyChanged = anyChanged || changed
	}

	feeChanges := []struct {
		requested *decimal.Decimal
		apply     func(*decimal.Decimal) (bool, error)
	}{
		{cmd.RegistrationFee(), entity.ChangeRegistrationFee},
		{cmd.TitleFee(), entity.ChangeTitleFee},
		{cmd.ProcessingFee(), entity.ChangeProcessingFee},
	}
	for _, fee := range feeChanges {
		if fee.requested == nil {
			continue
		}

		target := fee.requested
		if fee.requested.IsZero() {
			target = nil
		}

		changed, changeErr := fee.apply(target)
		if changeErr != nil {
			return nil, changeErr
		}
		anyChanged = anyChanged || changed
	}

	if !anyChanged {
		return entity, nil
	}

	if err = transactionRepo.Update(ctx, entity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entity, nil
}
