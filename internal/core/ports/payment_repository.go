package ports

import (
	"context"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payments.
type PaymentRepository interface {
	// Add persists a new payment to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment, including status
	// moves performed by the aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Delete removes a payment. Payments are deletable in any status.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a payment by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByTransaction retrieves a transaction's payments, newest first.
	GetByTransaction(ctx context.Context, transactionID kernel.UUID) ([]*payment.Payment, error)

	// GetAll retrieves all payments ordered by creation descending.
	GetAll(ctx context.Context) ([]*payment.Payment, error)
}
