package vehicle_test

import (
	"testing"
	"time"

	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/vehicle"
	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildVehicle(t *testing.T) *vehicle.MotorVehicle {
	t.Helper()

	vin, err := kernel.NewVIN("1HGCM82633A004352")
	require.NoError(t, err)
	mileage, err := kernel.NewMileage(42000, kernel.Kilometers)
	require.NoError(t, err)

	v, err := vehicle.NewMotorVehicle(vin, "Honda", "Accord", 2003, "silver",
		vehicle.FuelPetrol, vehicle.TransmissionAutomatic, nil, mileage, nil, nil)
	require.NoError(t, err)
	return v
}

func TestNewMotorVehicle(t *testing.T) {
	t.Run("creates an active vehicle", func(t *testing.T) {
		v := buildVehicle(t)

		require.NoError(t, v.Validate())
		assert.Equal(t, vehicle.StatusActive, v.Status())
		assert.Equal(t, 42000, v.MileageKm())
		assert.Nil(t, v.Owner())
	})

	t.Run("rejects blank make and model", func(t *testing.T) {
		vin, err := kernel.NewVIN("1HGCM82633A004352")
		require.NoError(t, err)
		mileage, err := kernel.NewMileage(0, kernel.Kilometers)
		require.NoError(t, err)

		_, err = vehicle.NewMotorVehicle(vin, "  ", "", 2003, "",
			vehicle.FuelPetrol, vehicle.TransmissionManual, nil, mileage, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects an out-of-range model year", func(t *testing.T) {
		vin, err := kernel.NewVIN("1HGCM82633A004352")
		require.NoError(t, err)
		mileage, err := kernel.NewMileage(0, kernel.Kilometers)
		require.NoError(t, err)

		_, err = vehicle.NewMotorVehicle(vin, "Benz", "Motorwagen", 1885, "",
			vehicle.FuelPetrol, vehicle.TransmissionManual, nil, mileage, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = vehicle.NewMotorVehicle(vin, "Honda", "Accord", time.Now().Year()+2, "",
			vehicle.FuelPetrol, vehicle.TransmissionManual, nil, mileage, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects a non-positive engine capacity", func(t *testing.T) {
		vin, err := kernel.NewVIN("1HGCM82633A004352")
		require.NoError(t, err)
		mileage, err := kernel.NewMileage(0, kernel.Kilometers)
		require.NoError(t, err)

		capacity := 0
		_, err = vehicle.NewMotorVehicle(vin, "Honda", "Accord", 2003, "",
			vehicle.FuelPetrol, vehicle.TransmissionManual, &capacity, mileage, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var v vehicle.MotorVehicle
		require.ErrorIs(t, v.Validate(), vehicle.ErrMotorVehicleIsNotConstructed)
	})
}

func TestUpdateMileage(t *testing.T) {
	t.Run("accepts a higher reading", func(t *testing.T) {
		v := buildVehicle(t)
		mileage, err := kernel.NewMileage(43500, kernel.Kilometers)
		require.NoError(t, err)

		changed, err := v.UpdateMileage(mileage)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 43500, v.MileageKm())
	})

	t.Run("equal reading is a no-op", func(t *testing.T) {
		v := buildVehicle(t)
		mileage, err := kernel.NewMileage(42000, kernel.Kilometers)
		require.NoError(t, err)

		changed, err := v.UpdateMileage(mileage)

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("rejects a lower reading", func(t *testing.T) {
		v := buildVehicle(t)
		mileage, err := kernel.NewMileage(41000, kernel.Kilometers)
		require.NoError(t, err)

		changed, err := v.UpdateMileage(mileage)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Contains(t, err.Error(), "cannot be less than")
		assert.False(t, changed)
		assert.Equal(t, 42000, v.MileageKm())
	})

	t.Run("converts miles before comparing", func(t *testing.T) {
		v := buildVehicle(t)
		// 30000 mi is about 48280 km, above the stored 42000 km.
		mileage, err := kernel.NewMileage(30000, kernel.Miles)
		require.NoError(t, err)

		changed, err := v.UpdateMileage(mileage)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 48280, v.MileageKm())
	})
}

func TestTransferOwnership(t *testing.T) {
	t.Run("assigns and reassigns owners", func(t *testing.T) {
		v := buildVehicle(t)
		first := kernel.GenerateCustomerID(time.Now())
		second := kernel.GenerateCustomerID(time.Now().Add(time.Minute))

		changed, err := v.TransferOwnership(&first)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = v.TransferOwnership(&second)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, v.Owner().IsEqual(second))
	})

	t.Run("transfer to the current owner is a no-op", func(t *testing.T) {
		v := buildVehicle(t)
		owner := kernel.GenerateCustomerID(time.Now())

		_, err := v.TransferOwnership(&owner)
		require.NoError(t, err)

		same := owner
		changed, err := v.TransferOwnership(&same)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("clearing absent ownership is a no-op", func(t *testing.T) {
		v := buildVehicle(t)

		changed, err := v.TransferOwnership(nil)

		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestChangeStatus(t *testing.T) {
	t.Run("moves through the lifecycle", func(t *testing.T) {
		v := buildVehicle(t)

		changed, err := v.MarkSold()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, vehicle.StatusSold, v.Status())

		changed, err = v.Reactivate()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, vehicle.StatusActive, v.Status())
	})

	t.Run("setting the current status is a no-op", func(t *testing.T) {
		v := buildVehicle(t)

		changed, err := v.Reactivate()

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		v := buildVehicle(t)

		_, err := v.ChangeStatus(vehicle.Status("impounded"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreMotorVehicle(t *testing.T) {
	t.Run("round-trips all fields", func(t *testing.T) {
		source := buildVehicle(t)
		_, err := source.MarkStolen()
		require.NoError(t, err)

		restored, err := vehicle.RestoreMotorVehicle(
			source.VIN(), source.Make(), source.Model(), source.Year(), source.Color(),
			source.FuelType(), source.Transmission(), source.EngineCapacityCC(),
			source.MileageKm(), source.LicensePlate(), source.Owner(), source.Status(),
			source.CreatedAt(), source.UpdatedAt(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(source))
		assert.Equal(t, vehicle.StatusStolen, restored.Status())
		assert.Equal(t, source.MileageKm(), restored.MileageKm())
	})
}
