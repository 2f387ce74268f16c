package commands

import (
	"context"
	"errors"

	"heim/internal/core/domain/model/transaction"
	"heim/internal/pkg/errs"
)

// CreateTransactionCommandHandler records registry transactions. Both the
// customer and the vehicle must resolve; a dangling reference fails with
// ReferenceNotFound.
type CreateTransactionCommandHandler struct {
	uowFactory TransactionUoWFactory
}

// NewCreateTransactionCommandHandler creates a handler for recording
// transactions.
func NewCreateTransactionCommandHandler(uowFactory TransactionUoWFactory) CreateTransactionCommandHandler {
	return CreateTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transaction recording command and returns the
// persisted entity.
func (h *CreateTransactionCommandHandler) Handle(
	ctx context.Context, cmd CreateTransactionCommand,
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewReferenceNotFoundErrorWithCause(
				"customer", cmd.CustomerID().Value(), err)
		}
		return nil, err
	}

	if _, err := uow.VehicleRepository().Get(ctx, cmd.VIN()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewReferenceNotFoundErrorWithCause(
				"vehicle", cmd.VIN().Value(), err)
		}
		return nil, err
	}

	entity, err := transaction.NewTransaction(cmd.TransactionID(), cmd.CustomerID(),
		cmd.VIN(), cmd.Type(), cmd.Date(), cmd.Amount(),
		cmd.RegistrationFee(), cmd.TitleFee(), cmd.ProcessingFee())
	if err != nil {
		return nil, err
	}

	transactionRepo := uow.TransactionRepository()
	if err = transactionRepo.Add(ctx, entity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entity, nil
}
