package queries

import (
	"errors"
	"time"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllTransactionsQueryIsNotConstructed = errors.New(
	"GetAllTransactionsQuery must be created via NewGetAllTransactionsQuery constructor",
)

// GetAllTransactionsQuery retrieves transaction listings, optionally
// narrowed to one customer or one vehicle.
type GetAllTransactionsQuery struct {
	customerID *kernel.CustomerID
	vin        *kernel.VIN

	guard guard.ConstructorGuard
}

// NewGetAllTransactionsQuery creates a query to list transactions. Both
// filters are optional; together they narrow to one customer-vehicle
// pair.
func NewGetAllTransactionsQuery(
	customerID *kernel.CustomerID, vin *kernel.VIN,
) (GetAllTransactionsQuery, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetAllTransactionsQuery{}, err
		}
	}
	if vin != nil {
		if err := vin.Validate(); err != nil {
			return GetAllTransactionsQuery{}, err
		}
	}

	return GetAllTransactionsQuery{
		customerID: customerID,
		vin:        vin,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTransactionsQueryIsNotConstructed)
}

// CustomerID returns the optional customer filter, nil when absent.
func (q GetAllTransactionsQuery) CustomerID() *kernel.CustomerID {
	return q.customerID
}

// VIN returns the optional vehicle filter, nil when absent.
func (q GetAllTransactionsQuery) VIN() *kernel.VIN {
	return q.vin
}

// TransactionResponse represents one transaction row in the read model,
// with the fee total computed by the database.
type TransactionResponse struct {
	ID              string
	CustomerID      string
	VIN             string
	Type            string
	Date            time.Time
	Amount          decimal.Decimal
	RegistrationFee *decimal.Decimal
	TitleFee        *decimal.Decimal
	ProcessingFee   *decimal.Decimal
	TotalFees       decimal.Decimal
}
