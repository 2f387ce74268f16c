package ports

import (
	"context"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates. Implementations load and store the full aggregate including
// the address collection.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// Fails with ObjectAlreadyExists when the email is already taken.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate,
	// reconciling the stored address collection with the aggregate's.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Delete removes a customer. Vehicles owned by the customer keep
	// existing with their ownership cleared; transactions referencing
	// the customer block the delete with ObjectInUse.
	Delete(ctx context.Context, id kernel.CustomerID) error

	// Get retrieves a customer aggregate by its identifier.
	Get(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error)

	// GetByEmail retrieves a customer aggregate by its unique email.
	GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)

	// GetAll retrieves all customers ordered by surnames, given names.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// Search retrieves customers whose name or email contains the text,
	// case-insensitively, in the natural order.
	Search(ctx context.Context, text string) ([]*customer.Customer, error)
}
