// Package queries contains read operations for retrieving registry state.
// Implements the Query side of the CQRS split: each query reads straight
// from the database and returns a read model shaped for its use case,
// bypassing the domain aggregates.
package queries

import (
	"errors"
	"strings"

	"heim/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery retrieves customer listings, optionally narrowed
// by a case-insensitive search over names and email.
type GetAllCustomersQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a query to list customers. An empty
// search returns everyone.
func NewGetAllCustomersQuery(search string) GetAllCustomersQuery {
	return GetAllCustomersQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// Search returns the optional search text, empty when listing everyone.
func (q GetAllCustomersQuery) Search() string {
	return q.search
}

// GetAllCustomersQueryResponse represents one customer row in the
// listing read model.
type GetAllCustomersQueryResponse struct {
	ID           string
	GivenNames   string
	Surnames     string
	Email        string
	Phone        *string
	AddressCount int
}
