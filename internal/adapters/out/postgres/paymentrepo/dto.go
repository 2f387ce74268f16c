// Package paymentrepo provides data transfer objects and mapping
// functions for payment persistence.
package paymentrepo

import (
	"time"

	"heim/internal/adapters/out/postgres/transactionrepo"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. The transaction reference is restricting: a transaction
// cannot be removed while payments point at it.
type PaymentDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Method          string          `gorm:"type:varchar(8);not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"type:varchar(16);not null;index"`
	ReferenceNumber string
	Notes           string
	CreatedAt       time.Time

	Transaction *transactionrepo.TransactionDTO `gorm:"foreignKey:TransactionID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database
// representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:              aggregate.ID().Bytes(),
		TransactionID:   aggregate.TransactionID().Bytes(),
		Method:          string(aggregate.Method()),
		Amount:          aggregate.Amount(),
		Status:          string(aggregate.Status()),
		ReferenceNumber: aggregate.ReferenceNumber(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using
// RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	transactionID, err := kernel.UUIDFromBytes(dto.TransactionID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, transactionID,
		payment.Method(dto.Method), dto.Amount, payment.Status(dto.Status),
		dto.ReferenceNumber, dto.Notes, dto.CreatedAt)
}
