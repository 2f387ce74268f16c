package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/payment"
	"heim/internal/pkg/errs"
	"heim/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdatePaymentCommandIsNotConstructed = errors.New(
	"UpdatePaymentCommand must be created via NewUpdatePaymentCommand constructor",
)

// UpdatePaymentCommand represents a partial update of a payment's
// bookkeeping fields. Field updates are allowed in any status; status
// moves go through the dedicated transition commands instead.
type UpdatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID       kernel.UUID
	method          *payment.Method
	amount          *decimal.Decimal
	referenceNumber *string
	notes           *string

	guard guard.ConstructorGuard
}

// NewUpdatePaymentCommand creates a command to update a payment. At least
// one field must be present.
func NewUpdatePaymentCommand(
	paymentID kernel.UUID,
	method *payment.Method,
	amount *decimal.Decimal,
	referenceNumber, notes *string,
) (UpdatePaymentCommand, error) {
	cmd := UpdatePaymentCommand{
		amount:          amount,
		referenceNumber: referenceNumber,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setMethod(method),
	); err != nil {
		return UpdatePaymentCommand{}, err
	}

	if method == nil && amount == nil && referenceNumber == nil && notes == nil {
		return UpdatePaymentCommand{}, errs.NewValueIsRequiredError("at least one updatable field")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentCommandIsNotConstructed)
}

func (c UpdatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c UpdatePaymentCommand) Method() *payment.Method {
	return c.method
}

func (c UpdatePaymentCommand) Amount() *decimal.Decimal {
	return c.amount
}

func (c UpdatePaymentCommand) ReferenceNumber() *string {
	return c.referenceNumber
}

func (c UpdatePaymentCommand) Notes() *string {
	return c.notes
}

func (c *UpdatePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *UpdatePaymentCommand) setMethod(method *payment.Method) error {
	if method == nil {
		return nil
	}
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}
