package queries

import (
	"context"
	"database/sql"
	"errors"

	"heim/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerQueryHandler retrieves the customer detail read model.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for customer detail
// queries.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the detail query. Returns ObjectNotFound when no
// customer carries the identifier.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (GetCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	var response GetCustomerQueryResponse
	var phone sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, given_names, surnames, email, phone
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Value()).Row()

	if err := row.Scan(
		&response.ID,
		&response.GivenNames,
		&response.Surnames,
		&response.Email,
		&phone,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCustomerQueryResponse{}, errs.NewObjectNotFoundError(
				"customer", query.CustomerID().Value())
		}
		return GetCustomerQueryResponse{}, err
	}

	if phone.Valid {
		response.Phone = &phone.String
	}

	addresses, err := h.loadAddresses(ctx, response.ID)
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}
	response.Addresses = addresses

	return response, nil
}

func (h GetCustomerQueryHandler) loadAddresses(
	ctx context.Context, customerID string,
) ([]CustomerAddressResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			line1,
			line2,
			city,
			state_province,
			postal_code,
			country,
			address_type,
			is_primary
		FROM customer_addresses
		WHERE customer_id = ?
		ORDER BY is_primary DESC, city
	`, customerID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]CustomerAddressResponse, 0)
	for rows.Next() {
		var address CustomerAddressResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&address.Line1,
			&address.Line2,
			&address.City,
			&address.StateProvince,
			&address.PostalCode,
			&address.Country,
			&address.AddressType,
			&address.IsPrimary,
		); err != nil {
			return nil, err
		}

		address.ID = id.String()
		addresses = append(addresses, address)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return addresses, nil
}
