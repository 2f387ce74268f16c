package commands

import (
	"errors"
	"strings"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/payment"
	"heim/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand represents a request to record money received
// against a transaction. New payments start in PENDING.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID       kernel.UUID
	transactionID   kernel.UUID
	method          payment.Method
	amount          decimal.Decimal
	referenceNumber string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to record a payment.
func NewCreatePaymentCommand(
	paymentID kernel.UUID,
	transactionID kernel.UUID,
	method payment.Method,
	amount decimal.Decimal,
	referenceNumber, notes string,
) (CreatePaymentCommand, error) {
	cmd := CreatePaymentCommand{
		amount:          amount,
		referenceNumber: strings.TrimSpace(referenceNumber),
		notes:           strings.TrimSpace(notes),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setTransactionID(transactionID),
		cmd.setMethod(method),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c CreatePaymentCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

func (c CreatePaymentCommand) Method() payment.Method {
	return c.method
}

func (c CreatePaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

func (c CreatePaymentCommand) ReferenceNumber() string {
	return c.referenceNumber
}

func (c CreatePaymentCommand) Notes() string {
	return c.notes
}

func (c *CreatePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *CreatePaymentCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}
	c.transactionID = transactionID
	return nil
}

func (c *CreatePaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}
