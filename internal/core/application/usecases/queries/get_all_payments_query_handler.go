package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllPaymentsQueryHandler lists payments, newest first.
type GetAllPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPaymentsQueryHandler creates a handler for payment listings.
func NewGetAllPaymentsQueryHandler(db *gorm.DB) GetAllPaymentsQueryHandler {
	return GetAllPaymentsQueryHandler{db: db}
}

// Handle executes the listing query with the optional transaction
// filter.
func (h GetAllPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllPaymentsQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := paymentSelect
	args := make([]any, 0, 1)
	if transactionID := query.TransactionID(); transactionID != nil {
		sqlQuery += `
		WHERE transaction_id = ?
		`
		args = append(args, transactionID.Bytes())
	}
	sqlQuery += `
		ORDER BY created_at DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentResponse, 0)
	for rows.Next() {
		row, scanErr := scanPaymentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		payments = append(payments, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

const paymentSelect = `
		SELECT
			id,
			transaction_id,
			method,
			amount,
			status,
			reference_number,
			notes,
			created_at
		FROM payments
`

func scanPaymentRow(scanner rowScanner) (PaymentResponse, error) {
	var row PaymentResponse
	var id, transactionID uuid.UUID

	if err := scanner.Scan(
		&id,
		&transactionID,
		&row.Method,
		&row.Amount,
		&row.Status,
		&row.ReferenceNumber,
		&row.Notes,
		&row.CreatedAt,
	); err != nil {
		return PaymentResponse{}, err
	}

	row.ID = id.String()
	row.TransactionID = transactionID.String()
	return row, nil
}
