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

var ErrCreateTransactionCommandIsNotConstructed = errors.New(
	"CreateTransactionCommand must be created via NewCreateTransactionCommand constructor",
)

// CreateTransactionCommand represents a request to record a registry
// transaction for a customer on a vehicle.
type CreateTransactionCommand struct { //nolint:recvcheck //using for validation
	transactionID   kernel.UUID
	customerID      kernel.CustomerID
	vin             kernel.VIN
	transactionType transaction.Type
	date            time.Time
	amount          decimal.Decimal
	registrationFee *decimal.Decimal
	titleFee        *decimal.Decimal
	processingFee   *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateTransactionCommand creates a command to record a transaction.
func NewCreateTransactionCommand(
	transactionID kernel.UUID,
	customerID kernel.CustomerID,
	vin kernel.VIN,
	transactionType transaction.Type,
	date time.Time,
	amount decimal.Decimal,
	registrationFee, titleFee, processingFee *decimal.Decimal,
) (CreateTransactionCommand, error) {
	cmd := CreateTransactionCommand{
		amount:          amount,
		registrationFee: registrationFee,
		titleFee:        titleFee,
		processingFee:   processingFee,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransactionID(transactionID),
		cmd.setCustomerID(customerID),
		cmd.setVIN(vin),
		cmd.setType(transactionType),
		cmd.setDate(date),
	); err != nil {
		return CreateTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransactionCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransactionCommandIsNotConstructed)
}

func (c CreateTransactionCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

func (c CreateTransactionCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c CreateTransactionCommand) VIN() kernel.VIN {
	return c.vin
}

func (c CreateTransactionCommand) Type() transaction.Type {
	return c.transactionType
}

func (c CreateTransactionCommand) Date() time.Time {
	return c.date
}

func (c CreateTransactionCommand) Amount() decimal.Decimal {
	return c.amount
}

func (c CreateTransactionCommand) RegistrationFee() *decimal.Decimal {
	return c.registrationFee
}

func (c CreateTransactionCommand) TitleFee() *decimal.Decimal {
	return c.titleFee
}

func (c CreateTransactionCommand) ProcessingFee() *decimal.Decimal {
	return c.processingFee
}

func (c *CreateTransactionCommand) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}
	c.transactionID = transactionID
	return nil
}

func (c *CreateTransactionCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateTransactionCommand) setVIN(vin kernel.VIN) error {
	if err := vin.Validate(); err != nil {
		return err
	}
	c.vin = vin
	return nil
}

func (c *CreateTransactionCommand) setType(transactionType transaction.Type) error {
	if err := transactionType.Validate(); err != nil {
		return err
	}
	c.transactionType = transactionType
	return nil
}

func (c *CreateTransactionCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("transaction date")
	}
	c.date = date
	return nil
}
