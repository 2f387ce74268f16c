package transaction

import (
	"errors"
	"fmt"
	"time"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrTransactionIsNotConstructed is returned when a Transaction instance
// was not created through the NewTransaction factory method.
var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransaction constructor")

// Type classifies a registry transaction.
type Type string

const (
	TypeRenewal      Type = "RNW"
	TypeTransfer     Type = "TNSF"
	TypeRegistration Type = "REG"
	TypeInspection   Type = "INSP"
)

func getValidTypes() map[Type]struct{} {
	return map[Type]struct{}{
		TypeRenewal:      {},
		TypeTransfer:     {},
		TypeRegistration: {},
		TypeInspection:   {},
	}
}

// Validate checks the transaction type is one of the known codes.
func (t Type) Validate() error {
	if _, ok := getValidTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transaction type is invalid",
			fmt.Errorf("%q is not a valid transaction type", string(t)))
	}
	return nil
}

func (t Type) String() string {
	return string(t)
}

// Transaction records a registry operation performed for a customer on a
// vehicle: a renewal, transfer, registration or inspection. Both the
// customer and the vehicle must exist and are protected from deletion
// while transactions reference them.
type Transaction struct {
	id         kernel.UUID
	customerID kernel.CustomerID
	vin        kernel.VIN

	transactionType Type
	date            time.Time
	amount          decimal.Decimal

	// fee fields are nil when the fee does not apply to the transaction
	registrationFee *decimal.Decimal
	titleFee        *decimal.Decimal
	processingFee   *decimal.Decimal

	createdAt time.Time

	isConstructed bool
}

// NewTransaction creates a validated Transaction.
func NewTransaction(
	id kernel.UUID,
	customerID kernel.CustomerID,
	vin kernel.VIN,
	transactionType Type,
	date time.Time,
	amount decimal.Decimal,
	registrationFee, titleFee, processingFee *decimal.Decimal,
) (*Transaction, error) {
	transaction := &Transaction{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		transaction.setID(id),
		transaction.setCustomerID(customerID),
		transaction.setVIN(vin),
		transaction.setType(transactionType),
		transaction.setDate(date),
		transaction.setAmount(amount),
		transaction.setRegistrationFee(registrationFee),
		transaction.setTitleFee(titleFee),
		transaction.setProcessingFee(processingFee),
	); err != nil {
		return nil, err
	}

	return transaction, nil
}

// RestoreTransaction reconstructs a Transaction from persistence.
func RestoreTransaction(
	id kernel.UUID,
	customerID kernel.CustomerID,
	vin kernel.VIN,
	transactionType Type,
	date time.Time,
	amount decimal.Decimal,
	registrationFee, titleFee, processingFee *decimal.Decimal,
	createdAt time.Time,
) (*Transaction, error) {
	transaction, err := NewTransaction(id, customerID, vin, transactionType,
		date, amount, registrationFee, titleFee, processingFee)
	if err != nil {
		return nil, err
	}

	transaction.createdAt = createdAt
	return transaction, nil
}

// Validate ensures the Transaction was properly constructed.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// IsEqual compares two transactions by their identifiers.
func (t *Transaction) IsEqual(other *Transaction) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *Transaction) ID() kernel.UUID {
	return t.id
}

func (t *Transaction) CustomerID() kernel.CustomerID {
	return t.customerID
}

func (t *Transaction) VIN() kernel.VIN {
	return t.vin
}

func (t *Transaction) Type() Type {
	return t.transactionType
}

func (t *Transaction) Date() time.Time {
	return t.date
}

func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

func (t *Transaction) RegistrationFee() *decimal.Decimal {
	return t.registrationFee
}

func (t *Transaction) TitleFee() *decimal.Decimal {
	return t.titleFee
}

func (t *Transaction) ProcessingFee() *decimal.Decimal {
	return t.processingFee
}

func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// TotalFees sums the fee fields that are present. Absent fees contribute
// nothing; a transaction with no fees totals zero.
func (t *Transaction) TotalFees() decimal.Decimal {
	total := decimal.Zero
	for _, fee := range []*decimal.Decimal{t.registrationFee, t.titleFee, t.processingFee} {
		if fee != nil {
			total = total.Add(*fee)
		}
	}
	return total
}

// ChangeType replaces the transaction type. Returns true when the stored
// value actually changed.
func (t *Transaction) ChangeType(transactionType Type) (bool, error) {
	if err := transactionType.Validate(); err != nil {
		return false, err
	}
	if t.transactionType == transactionType {
		return false, nil
	}
	t.transactionType = transactionType
	return true, nil
}

// ChangeDate replaces the transaction date.
func (t *Transaction) ChangeDate(date time.Time) (bool, error) {
	if date.IsZero() {
		return false, errs.NewValueIsRequiredError("transaction date")
	}
	if t.date.Equal(date) {
		return false, nil
	}
	t.date = date
	return true, nil
}

// ChangeAmount replaces the transaction amount.
func (t *Transaction) ChangeAmount(amount decimal.Decimal) (bool, error) {
	if err := validateAmount("amount", amount); err != nil {
		return false, err
	}
	if t.amount.Equal(amount) {
		return false, nil
	}
	t.amount = amount
	return true, nil
}

// ChangeRegistrationFee replaces the registration fee. A nil fee clears it.
func (t *Transaction) ChangeRegistrationFee(fee *decimal.Decimal) (bool, error) {
	return changeFee("registration fee", &t.registrationFee, fee)
}

// ChangeTitleFee replaces the title fee. A nil fee clears it.
func (t *Transaction) ChangeTitleFee(fee *decimal.Decimal) (bool, error) {
	return changeFee("title fee", &t.titleFee, fee)
}

// ChangeProcessingFee replaces the processing fee. A nil fee clears it.
func (t *Transaction) ChangeProcessingFee(fee *decimal.Decimal) (bool, error) {
	return changeFee("processing fee", &t.processingFee, fee)
}

func changeFee(paramName string, stored **decimal.Decimal, fee *decimal.Decimal) (bool, error) {
	if fee != nil {
		if err := validateAmount(paramName, *fee); err != nil {
			return false, err
		}
	}

	switch {
	case *stored == nil && fee == nil:
		return false, nil
	case *stored != nil && fee != nil && (*stored).Equal(*fee):
		return false, nil
	}

	*stored = fee
	return true, nil
}

func validateAmount(paramName string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName+" is invalid",
			fmt.Errorf("%s is negative", amount))
	}
	return nil
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	t.customerID = customerID
	return nil
}

func (t *Transaction) setVIN(vin kernel.VIN) error {
	if err := vin.Validate(); err != nil {
		return err
	}
	t.vin = vin
	return nil
}

func (t *Transaction) setType(transactionType Type) error {
	if err := transactionType.Validate(); err != nil {
		return err
	}
	t.transactionType = transactionType
	return nil
}

func (t *Transaction) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("transaction date")
	}
	t.date = date
	return nil
}

func (t *Transaction) setAmount(amount decimal.Decimal) error {
	if err := validateAmount("amount", amount); err != nil {
		return err
	}
	t.amount = amount
	return nil
}

func (t *Transaction) setRegistrationFee(fee *decimal.Decimal) error {
	if fee == nil {
		return nil
	}
	if err := validateAmount("registration fee", *fee); err != nil {
		return err
	}
	t.registrationFee = fee
	return nil
}

func (t *Transaction) setTitleFee(fee *decimal.Decimal) error {
	if fee == nil {
		return nil
	}
	if err := validateAmount("title fee", *fee); err != nil {
		return err
	}
	t.titleFee = fee
	return nil
}

func (t *Transaction) setProcessingFee(fee *decimal.Decimal) error {
	if fee == nil {
		return nil
	}
	if err := validateAmount("processing fee", *fee); err != nil {
		return err
	}
	t.processingFee = fee
	return nil
}
