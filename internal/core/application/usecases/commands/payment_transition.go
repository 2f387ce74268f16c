package commands

import (
	"context"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/payment"
)

// applyPaymentTransition is the shared handler body for the payment
// lifecycle commands: load, let the aggregate's status machine decide,
// persist, commit.
func applyPaymentTransition(
	ctx context.Context,
	uowFactory PaymentUoWFactory,
	paymentID kernel.UUID,
	transition func(*payment.Payment) error,
) (*payment.Payment, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if err = transition(aggregate); err != nil {
		return nil, err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
