package commands_test

import (
	"testing"
	"time"

	"heim/internal/core/application/usecases/commands"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateCustomerEmailCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := fixtureCustomer(t)
	newEmail, err := kernel.NewEmail("jane@new.example.com")
	require.NoError(t, err)
	cmd, err := commands.NewUpdateCustomerEmailCommand(existing.ID(), newEmail)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("GetByEmail", mock.Anything, newEmail).
			Return(nil, errs.NewObjectNotFoundError("customer", newEmail.Value())).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(recordingPublisher)
	h := commands.NewUpdateCustomerEmailCommandHandler(stubCustomerUoWFactory{uow: uow}, publisher)

	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "jane@new.example.com", updated.Email().Value())
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "customer.email_changed", publisher.events[0].EventName())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerEmailCommandHandler_Handle_SameEmailIsNoOp(t *testing.T) {
	ctx := t.Context()
	existing := fixtureCustomer(t)
	cmd, err := commands.NewUpdateCustomerEmailCommand(existing.ID(), existing.Email())
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("GetByEmail", mock.Anything, existing.Email()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(recordingPublisher)
	h := commands.NewUpdateCustomerEmailCommandHandler(stubCustomerUoWFactory{uow: uow}, publisher)

	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, updated.IsEqual(existing))
	assert.Empty(t, publisher.events, "no event for an unchanged email")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerEmailCommandHandler_Handle_EmailTakenByAnother(t *testing.T) {
	ctx := t.Context()
	existing := fixtureCustomer(t)
	holder := fixtureCustomerAt(t, existing.CreatedAt().Add(time.Minute))
	newEmail, err := kernel.NewEmail("taken@example.com")
	require.NoError(t, err)
	cmd, err := commands.NewUpdateCustomerEmailCommand(existing.ID(), newEmail)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("GetByEmail", mock.Anything, newEmail).Return(holder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(recordingPublisher)
	h := commands.NewUpdateCustomerEmailCommandHandler(stubCustomerUoWFactory{uow: uow}, publisher)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	assert.Empty(t, publisher.events)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCustomerEmailCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.GenerateCustomerID(fixtureCustomer(t).CreatedAt())
	email, err := kernel.NewEmail("jane@new.example.com")
	require.NoError(t, err)
	cmd, err := commands.NewUpdateCustomerEmailCommand(id, email)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("customer", id.Value())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateCustomerEmailCommandHandler(stubCustomerUoWFactory{uow: uow}, new(recordingPublisher))

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
