package queries

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves one customer with its full address
// collection.
type GetCustomerQuery struct {
	customerID kernel.CustomerID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query to retrieve a customer by ID.
func NewGetCustomerQuery(customerID kernel.CustomerID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CustomerID() kernel.CustomerID {
	return q.customerID
}

// GetCustomerQueryResponse represents the customer detail read model.
type GetCustomerQueryResponse struct {
	ID         string
	GivenNames string
	Surnames   string
	Email      string
	Phone      *string
	Addresses  []CustomerAddressResponse
}

// CustomerAddressResponse represents one address in the customer detail
// read model.
type CustomerAddressResponse struct {
	ID            string
	Line1         string
	Line2         string
	City          string
	StateProvince string
	PostalCode    string
	Country       string
	AddressType   string
	IsPrimary     bool
}
