package queries

import (
	"errors"
	"time"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllPaymentsQueryIsNotConstructed = errors.New(
	"GetAllPaymentsQuery must be created via NewGetAllPaymentsQuery constructor",
)

// GetAllPaymentsQuery retrieves payment listings, optionally narrowed to
// one transaction.
type GetAllPaymentsQuery struct {
	transactionID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAllPaymentsQuery creates a query to list payments. The
// transaction filter is optional.
func NewGetAllPaymentsQuery(transactionID *kernel.UUID) (GetAllPaymentsQuery, error) {
	if transactionID != nil {
		if err := transactionID.Validate(); err != nil {
			return GetAllPaymentsQuery{}, err
		}
	}

	return GetAllPaymentsQuery{
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPaymentsQueryIsNotConstructed)
}

// TransactionID returns the optional transaction filter, nil when
// absent.
func (q GetAllPaymentsQuery) TransactionID() *kernel.UUID {
	return q.transactionID
}

// PaymentResponse represents one payment row in the read model.
type PaymentResponse struct {
	ID              string
	TransactionID   string
	Method          string
	Amount          decimal.Decimal
	Status          string
	ReferenceNumber string
	Notes           string
	CreatedAt       time.Time
}
