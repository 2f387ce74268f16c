package customer

import (
	"errors"
	"time"

	"heim/internal/core/domain/model/kernel"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory methods.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate root for a registry customer and the postal
// addresses attached to them.
//
// Customer maintains these invariants:
//   - Must have a valid identifier, name and email
//   - At most one address is marked primary
//   - Can only be created through NewCustomer or RestoreCustomer
type Customer struct {
	id    kernel.CustomerID
	name  kernel.PersonName
	email kernel.Email

	// phone is optional contact info (nil if unknown)
	phone *kernel.PhoneNumber

	addresses []*Address

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCustomer creates a new Customer with validation. This is the only way
// to create a valid Customer for a fresh registration.
func NewCustomer(
	id kernel.CustomerID,
	name kernel.PersonName,
	email kernel.Email,
	phone *kernel.PhoneNumber,
) (*Customer, error) {
	now := time.Now().UTC()
	customer := &Customer{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
		customer.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistence, including its
// address collection and timestamps.
func RestoreCustomer(
	id kernel.CustomerID,
	name kernel.PersonName,
	email kernel.Email,
	phone *kernel.PhoneNumber,
	addresses []*Address,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	customer, err := NewCustomer(id, name, email, phone)
	if err != nil {
		return nil, err
	}

	for _, address := range addresses {
		if err := address.Validate(); err != nil {
			return nil, err
		}
	}

	customer.addresses = addresses
	customer.createdAt = createdAt
	customer.updatedAt = updatedAt
	return customer, nil
}

// Validate ensures the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.CustomerID {
	return c.id
}

func (c *Customer) Name() kernel.PersonName {
	return c.name
}

func (c *Customer) Email() kernel.Email {
	return c.email
}

// Phone returns the customer's phone number, nil when unknown.
func (c *Customer) Phone() *kernel.PhoneNumber {
	return c.phone
}

// Addresses returns the customer's addresses in insertion order.
func (c *Customer) Addresses() []*Address {
	return c.addresses
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// ChangeName replaces the customer's name. Returns true when the stored
// name actually changed.
func (c *Customer) ChangeName(name kernel.PersonName) (bool, error) {
	if err := name.Validate(); err != nil {
		return false, err
	}
	if c.name.IsEqual(name) {
		return false, nil
	}

	c.name = name
	c.touch()
	return true, nil
}

// ChangeEmail replaces the customer's email. Changing to the current email
// is a no-op and reports false.
func (c *Customer) ChangeEmail(email kernel.Email) (bool, error) {
	if err := email.Validate(); err != nil {
		return false, err
	}
	if c.email.IsEqual(email) {
		return false, nil
	}

	c.email = email
	c.touch()
	return true, nil
}

// ChangePhone replaces the customer's phone number. A nil phone clears it.
// Returns true when the stored value actually changed.
func (c *Customer) ChangePhone(phone *kernel.PhoneNumber) (bool, error) {
	if phone != nil {
		if err := phone.Validate(); err != nil {
			return false, err
		}
	}

	switch {
	case c.phone == nil && phone == nil:
		return false, nil
	case c.phone != nil && phone != nil && c.phone.Value() == phone.Value():
		return false, nil
	}

	c.phone = phone
	c.touch()
	return true, nil
}

// AddAddress attaches an address to the customer. When the new address is
// primary, every previously primary address is demoted in the same
// operation so that at most one primary address exists.
func (c *Customer) AddAddress(address *Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	if address.IsPrimary() {
		for _, existing := range c.addresses {
			existing.clearPrimary()
		}
	}

	c.addresses = append(c.addresses, address)
	c.touch()
	return nil
}

// RemoveAddress detaches the address with the given id. Removing an
// unknown id is a no-op and reports false.
func (c *Customer) RemoveAddress(addressID kernel.UUID) bool {
	for i, address := range c.addresses {
		if address.ID().IsEqual(addressID) {
			c.addresses = append(c.addresses[:i], c.addresses[i+1:]...)
			c.touch()
			return true
		}
	}
	return false
}

// PrimaryAddress returns the primary address, nil when none is marked.
func (c *Customer) PrimaryAddress() *Address {
	for _, address := range c.addresses {
		if address.IsPrimary() {
			return address
		}
	}
	return nil
}

func (c *Customer) touch() {
	c.updatedAt = time.Now().UTC()
}

func (c *Customer) setID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name kernel.PersonName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone *kernel.PhoneNumber) error {
	if phone == nil {
		return nil
	}
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}
