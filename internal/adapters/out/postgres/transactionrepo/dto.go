// Package transactionrepo provides data transfer objects and mapping
// functions for registry transaction persistence.
package transactionrepo

import (
	"time"

	"heim/internal/adapters/out/postgres/customerrepo"
	"heim/internal/adapters/out/postgres/vehiclerepo"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/transaction"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDTO represents the database structure for persisting
// registry transactions. Customer and vehicle references are restricting:
// neither can be removed while transactions point at them.
type TransactionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      string    `gorm:"type:varchar(14);not null;index"`
	VIN             string    `gorm:"type:varchar(17);not null;index"`
	Type            string    `gorm:"type:varchar(8);not null"`
	Date            time.Time `gorm:"not null;index"`
	Amount          decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	RegistrationFee *decimal.Decimal `gorm:"type:numeric(12,2)"`
	TitleFee        *decimal.Decimal `gorm:"type:numeric(12,2)"`
	ProcessingFee   *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt       time.Time

	Customer *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Vehicle  *vehiclerepo.VehicleDTO   `gorm:"foreignKey:VIN;references:VIN;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for transaction entities.
func (TransactionDTO) TableName() string {
	return "transactions"
}

// fromDomain converts a transaction domain entity to its database
// representation.
func fromDomain(entity *transaction.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:              entity.ID().Bytes(),
		CustomerID:      entity.CustomerID().Value(),
		VIN:             entity.VIN().Value(),
		Type:            string(entity.Type()),
		Date:            entity.Date(),
		Amount:          entity.Amount(),
		RegistrationFee: entity.RegistrationFee(),
		TitleFee:        entity.TitleFee(),
		ProcessingFee:   entity.ProcessingFee(),
		CreatedAt:       entity.CreatedAt(),
	}
}

// toDomain converts a database DTO to a transaction domain entity using
// RestoreTransaction.
func toDomain(dto TransactionDTO) (*transaction.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewCustomerID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	vin, err := kernel.NewVIN(dto.VIN)
	if err != nil {
		return nil, err
	}

	return transaction.RestoreTransaction(id, customerID, vin,
		transaction.Type(dto.Type), dto.Date, dto.Amount,
		dto.RegistrationFee, dto.TitleFee, dto.ProcessingFee, dto.CreatedAt)
}
