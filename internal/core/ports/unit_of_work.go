package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the current
// transaction. Client code must explicitly manage the transaction
// lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// CustomerRepository returns a CustomerRepository bound to the
	// current transaction.
	CustomerRepository() CustomerRepository

	// VehicleRepository returns a VehicleRepository bound to the
	// current transaction.
	VehicleRepository() VehicleRepository

	// TransactionRepository returns a TransactionRepository bound to
	// the current transaction.
	TransactionRepository() TransactionRepository

	// PaymentRepository returns a PaymentRepository bound to the
	// current transaction.
	PaymentRepository() PaymentRepository
}
