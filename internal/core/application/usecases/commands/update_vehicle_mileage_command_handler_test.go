package commands_test

import (
	"testing"

	"heim/internal/core/application/usecases/commands"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateVehicleMileageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := fixtureVehicle(t)
	reading, err := kernel.NewMileage(45000, kernel.Kilometers)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateVehicleMileageCommand(existing.VIN(), reading)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.VIN()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(recordingPublisher)
	h := commands.NewUpdateVehicleMileageCommandHandler(stubVehicleUoWFactory{uow: uow}, publisher)

	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 45000, updated.MileageKm())
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "vehicle.mileage_updated", publisher.events[0].EventName())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateVehicleMileageCommandHandler_Handle_ConvertsMiles(t *testing.T) {
	ctx := t.Context()
	existing := fixtureVehicle(t)
	reading, err := kernel.NewMileage(28000, kernel.Miles)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateVehicleMileageCommand(existing.VIN(), reading)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.VIN()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateVehicleMileageCommandHandler(stubVehicleUoWFactory{uow: uow}, new(recordingPublisher))

	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 45061, updated.MileageKm())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateVehicleMileageCommandHandler_Handle_SameReadingIsNoOp(t *testing.T) {
	ctx := t.Context()
	existing := fixtureVehicle(t)
	reading, err := kernel.NewMileage(existing.MileageKm(), kernel.Kilometers)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateVehicleMileageCommand(existing.VIN(), reading)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.VIN()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(recordingPublisher)
	h := commands.NewUpdateVehicleMileageCommandHandler(stubVehicleUoWFactory{uow: uow}, publisher)

	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, existing.MileageKm(), updated.MileageKm())
	assert.Empty(t, publisher.events, "no event for an unchanged reading")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateVehicleMileageCommandHandler_Handle_RejectsLowerReading(t *testing.T) {
	ctx := t.Context()
	existing := fixtureVehicle(t)
	reading, err := kernel.NewMileage(existing.MileageKm()-1000, kernel.Kilometers)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateVehicleMileageCommand(existing.VIN(), reading)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.VIN()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateVehicleMileageCommandHandler(stubVehicleUoWFactory{uow: uow}, new(recordingPublisher))

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Contains(t, err.Error(), "cannot be less than")
	assert.Equal(t, 42000, existing.MileageKm())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateVehicleMileageCommandHandler_Handle_VehicleNotFound(t *testing.T) {
	ctx := t.Context()
	vin := fixtureVIN(t)
	reading, err := kernel.NewMileage(45000, kernel.Kilometers)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateVehicleMileageCommand(vin, reading)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, vin).
			Return(nil, errs.NewObjectNotFoundError("vehicle", vin.Value())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateVehicleMileageCommandHandler(stubVehicleUoWFactory{uow: uow}, new(recordingPublisher))

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
