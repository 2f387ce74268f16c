package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrCancelPaymentCommandIsNotConstructed = errors.New(
	"CancelPaymentCommand must be created via NewCancelPaymentCommand constructor",
)

// CancelPaymentCommand represents a request to move a payment from
// PENDING to CANCELLED.
type CancelPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelPaymentCommand creates a command to cancel a payment.
func NewCancelPaymentCommand(paymentID kernel.UUID) (CancelPaymentCommand, error) {
	cmd := CancelPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPaymentID(paymentID); err != nil {
		return CancelPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCancelPaymentCommandIsNotConstructed)
}

func (c CancelPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *CancelPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}
