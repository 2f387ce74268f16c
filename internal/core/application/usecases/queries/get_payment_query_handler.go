package queries

import (
	"context"
	"database/sql"
	"errors"

	"heim/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPaymentQueryHandler retrieves the payment detail read model.
type GetPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentQueryHandler creates a handler for payment detail queries.
func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

// Handle executes the detail query. Returns ObjectNotFound when no
// payment carries the identifier.
func (h GetPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentQuery,
) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		paymentSelect+`
		WHERE id = ?
	`, query.PaymentID().Bytes()).Row()

	response, err := scanPaymentRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PaymentResponse{}, errs.NewObjectNotFoundError(
				"payment", query.PaymentID().String())
		}
		return PaymentResponse{}, err
	}

	return response, nil
}
