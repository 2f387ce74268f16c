package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment factory method.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Method is how a payment was made.
type Method string

const (
	MethodCash  Method = "CASH"
	MethodCard  Method = "CARD"
	MethodCheck Method = "CHECK"
	MethodACH   Method = "ACH"
	MethodWire  Method = "WIRE"
)

func getValidMethods() map[Method]struct{} {
	return map[Method]struct{}{
		MethodCash:  {},
		MethodCard:  {},
		MethodCheck: {},
		MethodACH:   {},
		MethodWire:  {},
	}
}

// Validate checks the method is one of the known codes.
func (m Method) Validate() error {
	if _, ok := getValidMethods()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
	return nil
}

func (m Method) String() string {
	return string(m)
}

// Payment is the aggregate root for money received against a transaction.
// New payments start in PENDING; the status machine in status.go governs
// every later move.
type Payment struct {
	id            kernel.UUID
	transactionID kernel.UUID

	method Method
	amount decimal.Decimal
	status Status

	referenceNumber string
	notes           string

	createdAt time.Time

	isConstructed bool
}

// NewPayment creates a new Payment in PENDING status.
func NewPayment(
	id kernel.UUID,
	transactionID kernel.UUID,
	method Method,
	amount decimal.Decimal,
	referenceNumber, notes string,
) (*Payment, error) {
	payment := &Payment{
		status:          StatusPending,
		referenceNumber: strings.TrimSpace(referenceNumber),
		notes:           strings.TrimSpace(notes),
		createdAt:       time.Now().UTC(),
		isConstructed:   true,
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setTransactionID(transactionID),
		payment.setMethod(method),
		payment.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// RestorePayment reconstructs a Payment from persistence, including its
// status.
func RestorePayment(
	id kernel.UUID,
	transactionID kernel.UUID,
	method Method,
	amount decimal.Decimal,
	status Status,
	referenceNumber, notes string,
	createdAt time.Time,
) (*Payment, error) {
	payment, err := NewPayment(id, transactionID, method, amount, referenceNumber, notes)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	payment.status = status
	payment.createdAt = createdAt
	return payment, nil
}

// Validate ensures the Payment was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// IsEqual compares two payments by their identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) TransactionID() kernel.UUID {
	return p.transactionID
}

func (p *Payment) Method() Method {
	return p.method
}

func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) ReferenceNumber() string {
	return p.referenceNumber
}

func (p *Payment) Notes() string {
	return p.notes
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// IsCompleted reports whether the payment reached COMPLETED.
func (p *Payment) IsCompleted() bool {
	return p.status == StatusCompleted
}

// IsRefundable reports whether a refund is currently possible. Only
// completed payments can be refunded.
func (p *Payment) IsRefundable() bool {
	return p.status == StatusCompleted
}

// Complete moves the payment from PENDING to COMPLETED.
func (p *Payment) Complete() error {
	return p.applyEvent(EventComplete)
}

// Refund moves the payment from COMPLETED to REFUNDED.
func (p *Payment) Refund() error {
	return p.applyEvent(EventRefund)
}

// Cancel moves the payment from PENDING to CANCELLED.
func (p *Payment) Cancel() error {
	return p.applyEvent(EventCancel)
}

func (p *Payment) applyEvent(event Event) error {
	next, err := p.status.apply(event, p.id.String())
	if err != nil {
		return err
	}
	p.status = next
	return nil
}

// ChangeMethod replaces the payment method. Allowed in any status.
func (p *Payment) ChangeMethod(method Method) (bool, error) {
	if err := method.Validate(); err != nil {
		return false, err
	}
	if p.method == method {
		return false, nil
	}
	p.method = method
	return true, nil
}

// ChangeAmount replaces the amount. Allowed in any status.
func (p *Payment) ChangeAmount(amount decimal.Decimal) (bool, error) {
	if err := validateAmount(amount); err != nil {
		return false, err
	}
	if p.amount.Equal(amount) {
		return false, nil
	}
	p.amount = amount
	return true, nil
}

// ChangeReferenceNumber replaces the external reference number.
func (p *Payment) ChangeReferenceNumber(referenceNumber string) bool {
	trimmed := strings.TrimSpace(referenceNumber)
	if p.referenceNumber == trimmed {
		return false
	}
	p.referenceNumber = trimmed
	return true
}

// ChangeNotes replaces the free-form notes.
func (p *Payment) ChangeNotes(notes string) bool {
	trimmed := strings.TrimSpace(notes)
	if p.notes == trimmed {
		return false
	}
	p.notes = trimmed
	return true
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("payment amount is invalid",
			fmt.Errorf("%s is negative", amount))
	}
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setTransactionID(transactionID kernel.UUID) error {
	if err := transactionID.Validate(); err != nil {
		return err
	}
	p.transactionID = transactionID
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setAmount(amount decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	p.amount = amount
	return nil
}
