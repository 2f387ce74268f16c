package vehiclerepo

import (
	"context"
	"errors"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/vehicle"
	"heim/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle to the database. A duplicate VIN surfaces as
// ObjectAlreadyExists via the primary key.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.MotorVehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"vehicle VIN", dto.VIN, err)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewReferenceNotFoundErrorWithCause(
				"owner", dto.OwnerID, err)
		}
		return err
	}

	return nil
}

// Update saves an existing vehicle to the database. Columns are selected
// explicitly so cleared optional fields are written as NULL.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.MotorVehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).
		Where("vin = ?", dto.VIN).
		Select("Color", "EngineCapacityCC", "MileageKm", "PlateNumber",
			"PlateState", "OwnerID", "Status", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewReferenceNotFoundErrorWithCause(
				"owner", dto.OwnerID, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", dto.VIN)
	}

	return nil
}

// Delete removes a vehicle. Registry transactions referencing the VIN
// block the delete with ObjectInUse through the restricting foreign key.
func (r *GormVehicleRepository) Delete(ctx context.Context, vin kernel.VIN) error {
	if err := vin.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VehicleDTO{}, "vin = ?", vin.Value())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectInUseErrorWithCause(
				"vehicle", vin.Value(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", vin.Value())
	}

	return nil
}

// Get retrieves a vehicle by VIN.
func (r *GormVehicleRepository) Get(ctx context.Context, vin kernel.VIN) (*vehicle.MotorVehicle, error) {
	if err := vin.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "vin = ?", vin.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", vin.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwner retrieves all vehicles owned by a customer.
func (r *GormVehicleRepository) GetByOwner(ctx context.Context, ownerID kernel.CustomerID) ([]*vehicle.MotorVehicle, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Value()).
		Order("year DESC, make, model").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves all vehicles, newest model year first.
func (r *GormVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.MotorVehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).
		Order("year DESC, make, model").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Search retrieves vehicles whose VIN, make, model or plate contains the
// text, case-insensitively, in the natural order.
func (r *GormVehicleRepository) Search(ctx context.Context, text string) ([]*vehicle.MotorVehicle, error) {
	pattern := "%" + text + "%"

	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).
		Where("LOWER(vin) LIKE LOWER(?) OR LOWER(make) LIKE LOWER(?) OR LOWER(model) LIKE LOWER(?) OR LOWER(plate_number) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern).
		Order("year DESC, make, model").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []VehicleDTO) ([]*vehicle.MotorVehicle, error) {
	vehicles := make([]*vehicle.MotorVehicle, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, aggregate)
	}

	return vehicles, nil
}
