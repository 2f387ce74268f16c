package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllTransactionsQueryHandler lists transactions, newest first.
type GetAllTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTransactionsQueryHandler creates a handler for transaction
// listings.
func NewGetAllTransactionsQueryHandler(db *gorm.DB) GetAllTransactionsQueryHandler {
	return GetAllTransactionsQueryHandler{db: db}
}

// Handle executes the listing query with the optional customer and
// vehicle filters.
func (h GetAllTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetAllTransactionsQuery,
) ([]TransactionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := transactionSelect + `
		WHERE 1 = 1
	`
	args := make([]any, 0, 2)
	if customerID := query.CustomerID(); customerID != nil {
		sqlQuery += `
			AND customer_id = ?
		`
		args = append(args, customerID.Value())
	}
	if vin := query.VIN(); vin != nil {
		sqlQuery += `
			AND vin = ?
		`
		args = append(args, vin.Value())
	}
	sqlQuery += `
		ORDER BY date DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]TransactionResponse, 0)
	for rows.Next() {
		row, scanErr := scanTransactionRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		transactions = append(transactions, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

const transactionSelect = `
		SELECT
			id,
			customer_id,
			vin,
			type,
			date,
			amount,
			registration_fee,
			title_fee,
			processing_fee,
			COALESCE(registration_fee, 0)
				+ COALESCE(title_fee, 0)
				+ COALESCE(processing_fee, 0) AS total_fees
		FROM transactions
`

func scanTransactionRow(scanner rowScanner) (TransactionResponse, error) {
	var row TransactionResponse
	var id uuid.UUID
	var registrationFee, titleFee, processingFee decimal.NullDecimal

	if err := scanner.Scan(
		&id,
		&row.CustomerID,
		&row.VIN,
		&row.Type,
		&row.Date,
		&row.Amount,
		&registrationFee,
		&titleFee,
		&processingFee,
		&row.TotalFees,
	); err != nil {
		return TransactionResponse{}, err
	}

	row.ID = id.String()
	if registrationFee.Valid {
		row.RegistrationFee = &registrationFee.Decimal
	}
	if titleFee.Valid {
		row.TitleFee = &titleFee.Decimal
	}
	if processingFee.Valid {
		row.ProcessingFee = &processingFee.Decimal
	}

	return row, nil
}
