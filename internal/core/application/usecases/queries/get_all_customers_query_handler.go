package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetAllCustomersQueryHandler lists customers with their address counts.
// Uses direct SQL for read performance, skipping aggregate hydration.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer listings.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the listing query. Rows come back ordered by surnames,
// then given names.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]GetAllCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			c.id,
			c.given_names,
			c.surnames,
			c.email,
			c.phone,
			COUNT(a.id)
		FROM customers c
		LEFT JOIN customer_addresses a ON a.customer_id = c.id
	`
	args := make([]any, 0, 3)
	if search := query.Search(); search != "" {
		sqlQuery += `
		WHERE LOWER(c.given_names) LIKE LOWER(?)
			OR LOWER(c.surnames) LIKE LOWER(?)
			OR LOWER(c.email) LIKE LOWER(?)
		`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	sqlQuery += `
		GROUP BY c.id, c.given_names, c.surnames, c.email, c.phone
		ORDER BY c.surnames, c.given_names
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]GetAllCustomersQueryResponse, 0)
	for rows.Next() {
		var row GetAllCustomersQueryResponse
		var phone sql.NullString

		if err = rows.Scan(
			&row.ID,
			&row.GivenNames,
			&row.Surnames,
			&row.Email,
			&phone,
			&row.AddressCount,
		); err != nil {
			return nil, err
		}

		if phone.Valid {
			row.Phone = &phone.String
		}
		customers = append(customers, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
