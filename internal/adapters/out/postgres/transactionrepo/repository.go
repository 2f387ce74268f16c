package transactionrepo

import (
	"context"
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/transaction"
	"heim/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GORM transaction repository.
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Add saves a new transaction to the database. A dangling customer or
// vehicle reference surfaces as ReferenceNotFound via the foreign keys.
func (r *GormTransactionRepository) Add(ctx context.Context, entity *transaction.Transaction) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"transaction", entity.ID().String(), err)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewReferenceNotFoundErrorWithCause(
				"transaction reference", entity.ID().String(), err)
		}
		return err
	}

	return nil
}

// Update saves an existing transaction to the database. Columns are
// selected explicitly so cleared fees are written as NULL.
func (r *GormTransactionRepository) Update(ctx context.Context, entity *transaction.Transaction) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).Model(&TransactionDTO{}).
		Where("id = ?", dto.ID).
		Select("Type", "Date", "Amount", "RegistrationFee", "TitleFee", "ProcessingFee").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("transaction", entity.ID().String())
	}

	return nil
}

// Delete removes a transaction. Payments referencing the transaction
// block the delete with ObjectInUse through the restricting foreign key.
func (r *GormTransactionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TransactionDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectInUseErrorWithCause(
				"transaction", id.String(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("transaction", id.String())
	}

	return nil
}

// Get retrieves a transaction by ID.
func (r *GormTransactionRepository) Get(ctx context.Context, id kernel.UUID) (*transaction.Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transaction", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves all transactions for a customer, newest first.
func (r *GormTransactionRepository) GetByCustomer(ctx context.Context, customerID kernel.CustomerID) ([]*transaction.Transaction, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Value()).
		Order("date DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByVIN retrieves all transactions for a vehicle, newest first.
func (r *GormTransactionRepository) GetByVIN(ctx context.Context, vin kernel.VIN) ([]*transaction.Transaction, error) {
	if err := vin.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	if err := r.db.WithContext(ctx).
		Where("vin = ?", vin.Value()).
		Order("date DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves all transactions, newest first.
func (r *GormTransactionRepository) GetAll(ctx context.Context) ([]*transaction.Transaction, error) {
	var dtos []TransactionDTO
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []TransactionDTO) ([]*transaction.Transaction, error) {
	transactions := make([]*transaction.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		entity, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, entity)
	}

	return transactions, nil
}
