// Package commands contains business operations that modify system state.
// Every operation is a validated command struct plus a handler that owns
// the transaction: begin, mutate aggregates through repositories, commit,
// and only then publish domain events.
package commands

import (
	"context"

	"heim/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest interface that covers the
// aggregates they touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to the customer repository
	// within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository
	// within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// TransactionRepoFactory provides access to the transaction
	// repository within a transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// PaymentRepoFactory provides access to the payment repository
	// within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// VehicleUoW manages transactions for vehicle operations. The
	// customer repository is included to resolve owner references.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
		CustomerRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// TransactionUoW manages transactions for registry transaction
	// operations, which must resolve both customer and vehicle.
	TransactionUoW interface {
		TxManager
		TransactionRepoFactory
		CustomerRepoFactory
		VehicleRepoFactory
	}

	// TransactionUoWFactory creates new transaction unit of work instances.
	TransactionUoWFactory interface {
		Create() TransactionUoW
	}

	// PaymentUoW manages transactions for payment operations, which must
	// resolve the paid transaction.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		TransactionRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
