package commands

import (
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/guard"
)

var ErrDeletePaymentCommandIsNotConstructed = errors.New(
	"DeletePaymentCommand must be created via NewDeletePaymentCommand constructor",
)

// DeletePaymentCommand represents a request to remove a payment record.
// Payments are deletable in any status.
type DeletePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePaymentCommand creates a command to remove a payment.
func NewDeletePaymentCommand(paymentID kernel.UUID) (DeletePaymentCommand, error) {
	cmd := DeletePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPaymentID(paymentID); err != nil {
		return DeletePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrDeletePaymentCommandIsNotConstructed)
}

func (c DeletePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *DeletePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}
