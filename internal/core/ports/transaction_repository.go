package ports

import (
	"context"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/transaction"
)

// TransactionRepository defines the persistence contract for registry
// transactions.
type TransactionRepository interface {
	// Add persists a new transaction to storage.
	Add(ctx context.Context, aggregate *transaction.Transaction) error

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, aggregate *transaction.Transaction) error

	// Delete removes a transaction. Payments referencing it block the
	// delete with ObjectInUse.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a transaction by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*transaction.Transaction, error)

	// GetByCustomer retrieves a customer's transactions, newest first.
	GetByCustomer(ctx context.Context, customerID kernel.CustomerID) ([]*transaction.Transaction, error)

	// GetByVIN retrieves a vehicle's transactions, newest first.
	GetByVIN(ctx context.Context, vin kernel.VIN) ([]*transaction.Transaction, error)

	// GetAll retrieves all transactions ordered by date descending.
	GetAll(ctx context.Context) ([]*transaction.Transaction, error)
}
