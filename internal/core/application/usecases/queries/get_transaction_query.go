package queries

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrGetTransactionQueryIsNotConstructed = errors.New(
	"GetTransactionQuery must be created via NewGetTransactionQuery constructor",
)

// GetTransactionQuery retrieves one transaction by ID.
type GetTransactionQuery struct {
	transactionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransactionQuery creates a query to retrieve a transaction.
func NewGetTransactionQuery(transactionID kernel.UUID) (GetTransactionQuery, error) {
	if err := transactionID.Validate(); err != nil {
		return GetTransactionQuery{}, err
	}

	return GetTransactionQuery{
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionQueryIsNotConstructed)
}

func (q GetTransactionQuery) TransactionID() kernel.UUID {
	return q.transactionID
}
