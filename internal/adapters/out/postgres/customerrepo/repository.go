package customerrepo

import (
	"context"
	"errors"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer to the database. A duplicate email surfaces as
// ObjectAlreadyExists via the unique index.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"customer email", dto.Email, err)
		}
		return err
	}

	return nil
}

// Update saves an existing customer to the database. The stored address
// rows are replaced with the aggregate's current collection.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("GivenNames", "Surnames", "Email", "Phone", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"customer email", dto.Email, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", dto.ID)
	}

	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", dto.ID).
		Delete(&AddressDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Addresses) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Addresses).Error; err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a customer. Registry transactions referencing the
// customer block the delete with ObjectInUse through the restricting
// foreign key; address rows cascade.
func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Model(&vehicleOwnerDTO{}).
		Where("owner_id = ?", id.Value()).
		Update("owner_id", nil).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectInUseErrorWithCause(
				"customer", id.Value(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", id.Value())
	}

	return nil
}

// Get retrieves a customer by ID including its addresses.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Preload("Addresses").
		First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a customer by its unique email including its
// addresses.
func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Preload("Addresses").
		First(&dto, "email = ?", email.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", email.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all customers ordered by surnames, then given names.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Preload("Addresses").
		Order("surnames, given_names").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Search retrieves customers whose name or email contains the text,
// case-insensitively, in the natural order.
func (r *GormCustomerRepository) Search(ctx context.Context, text string) ([]*customer.Customer, error) {
	pattern := "%" + text + "%"

	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Preload("Addresses").
		Where("LOWER(given_names) LIKE LOWER(?) OR LOWER(surnames) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order("surnames, given_names").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []CustomerDTO) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, aggregate)
	}

	return customers, nil
}

// vehicleOwnerDTO targets the vehicles table for clearing ownership on
// customer removal without importing the vehicle repository package.
type vehicleOwnerDTO struct {
	OwnerID *string
}

func (vehicleOwnerDTO) TableName() string {
	return "vehicles"
}
