package commands

import (
	"errors"
	"time"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/transaction"
	"heim/internal/pkg/errs"
	"heim/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateTransactionCommandIsNotConstructed = errors.New(
	"UpdateTransactionCommand must be created via NewUpdateTransactionCommand constructor",
)

// UpdateTransactionCommand represents a partial update of a transaction.
// Nil fields are left untouched; a fee pointing at zero clears the stored
// fee.
type UpdateTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID   kernel.UUID
	transactionType *transaction.Type
	date            *time.Time
	amount          *decimal.Decimal
	registrationFee *decimal.Decimal
	titleFee        *decimal.Decimal
	processingFee   *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateTransactionCommand creates a command to update a transaction.
// At least one field must be present.
func NewUpdateTransactionCommand(
	transactionID kernel.UUID,
	transactionType *transaction.Type,
	date *time.Time,
	amount *decimal.Decimal,
	registrationFee, titleFee, processingFee *decimal.Decimal,
) (UpdateTransactionCommand, error) {
	cmd := UpdateTransactionCommand{
		date:            date,
		amount:          amount,
		registrationFee: registrationFee,
		titleFee:        titleFee,
		processingFee:   processingFee,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransactionID(transactionID),
		cmd.setType(transactionType),
	); err != nil {
		return UpdateTransactionCommand{}, err
	}

	if transactionType == nil && date == nil && amount == nil &&
		registrationFee == nil && titleFee == nil && processingFee == nil {
		return UpdateTransactionCommand{}, errs.NewValueIsRequiredError("at least one updatable field")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTransactionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTransactionCommandIsNotConstructed)
}

func (c UpdateTransactionCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

func (c UpdateTransactionCommand) Type() *transaction.Type {
	return c.transactionType
}

func (c UpdateTransactionCommand) Date() *time.Time {
	return c.date
}

func (c UpdateTransactionCommand) Amount() *decimal.Decimal {
	return c.amount
}

// RegistrationFee returns the requested fee change: nil when untouched, a
// zero value to clear, anything else to set.
func (c UpdateTransactionCommand) RegistrationFee() *decimal.Decimal {
	return c.registrationFee
}

func (c UpdateTransactionCommand) TitleFee() *decimal.Decimal {
	return c.titleFee
}

func (c UpdateTransactionCommand) ProcessingFee() *decimal.Decimal {
	return c.processingFee
}

func (c *UpdateTransactionCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}
	c.transactionID = transactionID
	return nil
}

func (c *UpdateTransactionCommand) setType(transactionType *transaction.Type) error {
	if transactionType == nil {
		return nil
	}
	if err := transactionType.Validate(); err != nil {
		return err
	}
	c.transactionType = transactionType
	return nil
}
