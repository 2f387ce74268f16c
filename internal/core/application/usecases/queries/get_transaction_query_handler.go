package queries

import (
	"context"
	"database/sql"
	"errors"

	"heim/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTransactionQueryHandler retrieves the transaction detail read
// model, fee total included.
type GetTransactionQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionQueryHandler creates a handler for transaction detail
// queries.
func NewGetTransactionQueryHandler(db *gorm.DB) GetTransactionQueryHandler {
	return GetTransactionQueryHandler{db: db}
}

// Handle executes the detail query. Returns ObjectNotFound when no
// transaction carries the identifier.
func (h GetTransactionQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionQuery,
) (TransactionResponse, error) {
	if err := query.Validate(); err != nil {
		return TransactionResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		transactionSelect+`
		WHERE id = ?
	`, query.TransactionID().Bytes()).Row()

	response, err := scanTransactionRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TransactionResponse{}, errs.NewObjectNotFoundError(
				"transaction", query.TransactionID().String())
		}
		return TransactionResponse{}, err
	}

	return response, nil
}
