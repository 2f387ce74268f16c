// Package customerrepo provides data transfer objects and mapping
// functions for customer persistence. The customer aggregate is stored as
// a customers row plus its owned addresses rows; both are loaded and
// written together.
package customerrepo

import (
	"time"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. The registry identifier is the natural primary key; the
// email carries a unique index that backs the uniqueness guarantee.
type CustomerDTO struct {
	ID         string       `gorm:"type:varchar(14);primaryKey"`
	GivenNames string       `gorm:"not null"`
	Surnames   string       `gorm:"not null;index"`
	Email      string       `gorm:"not null;uniqueIndex"`
	Phone      *string      `gorm:"type:varchar(32)"`
	Addresses  []AddressDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents one address row owned by a customer.
type AddressDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    string    `gorm:"type:varchar(14);not null;index"`
	Line1         string    `gorm:"not null"`
	Line2         string
	City          string `gorm:"not null"`
	StateProvince string
	PostalCode    string
	Country       string `gorm:"not null"`
	AddressType   string `gorm:"type:varchar(16);not null"`
	IsPrimary     bool
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "customer_addresses"
}

// fromDomain converts a customer domain aggregate to its database
// representation, including the address collection.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	var phone *string
	if p := aggregate.Phone(); p != nil {
		value := p.Value()
		phone = &value
	}

	addresses := make([]AddressDTO, 0, len(aggregate.Addresses()))
	for _, address := range aggregate.Addresses() {
		addresses = append(addresses, addressFromDomain(aggregate.ID(), address))
	}

	return CustomerDTO{
		ID:         aggregate.ID().Value(),
		GivenNames: aggregate.Name().GivenNames(),
		Surnames:   aggregate.Name().Surnames(),
		Email:      aggregate.Email().Value(),
		Phone:      phone,
		Addresses:  addresses,
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

func addressFromDomain(customerID kernel.CustomerID, address *customer.Address) AddressDTO {
	return AddressDTO{
		ID:            address.ID().Bytes(),
		CustomerID:    customerID.Value(),
		Line1:         address.Line1(),
		Line2:         address.Line2(),
		City:          address.City(),
		StateProvince: address.StateProvince(),
		PostalCode:    address.PostalCode(),
		Country:       address.Country(),
		AddressType:   address.Type().String(),
		IsPrimary:     address.IsPrimary(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate using
// RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.NewCustomerID(dto.ID)
	if err != nil {
		return nil, err
	}

	name, err := kernel.NewPersonName(dto.GivenNames, dto.Surnames)
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	var phone *kernel.PhoneNumber
	if dto.Phone != nil {
		p, phoneErr := kernel.NewPhoneNumber(*dto.Phone)
		if phoneErr != nil {
			return nil, phoneErr
		}
		phone = &p
	}

	addresses := make([]*customer.Address, 0, len(dto.Addresses))
	for _, addressDTO := range dto.Addresses {
		address, addressErr := addressToDomain(addressDTO)
		if addressErr != nil {
			return nil, addressErr
		}
		addresses = append(addresses, address)
	}

	return customer.RestoreCustomer(id, name, email, phone, addresses,
		dto.CreatedAt, dto.UpdatedAt)
}

func addressToDomain(dto AddressDTO) (*customer.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.NewAddress(id, dto.Line1, dto.Line2, dto.City,
		dto.StateProvince, dto.PostalCode, dto.Country,
		customer.AddressType(dto.AddressType), dto.IsPrimary)
}
