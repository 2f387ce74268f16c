package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrDeleteTransactionCommandIsNotConstructed = errors.New(
	"DeleteTransactionCommand must be created via NewDeleteTransactionCommand constructor",
)

// DeleteTransactionCommand represents a request to remove a transaction.
type DeleteTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTransactionCommand creates a command to remove a transaction.
func NewDeleteTransactionCommand(transactionID kernel.UUID) (DeleteTransactionCommand, error) {
	cmd := DeleteTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTransactionID(transactionID); err != nil {
		return DeleteTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTransactionCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTransactionCommandIsNotConstructed)
}

func (c DeleteTransactionCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

func (c *DeleteTransactionCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}
	c.transactionID = transactionID
	return nil
}
