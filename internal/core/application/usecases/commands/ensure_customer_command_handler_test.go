package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureCustomerCommandHandler_Handle_ExistingCustomer(t *testing.T) {
	ctx := t.Context()
	existing := storedCustomer(t, "Maria", "maria@example.com")

	cmd, err := commands.NewEnsureCustomerCommand(kernel.NewUUID(), "Maria Silva",
		"maria@example.com", "+55 11 91234-5678")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "maria@example.com").Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEnsureCustomerCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// The stored record wins; the submitted name does not overwrite it.
	assert.Equal(t, existing.ID(), got.ID())
	assert.Equal(t, "Maria", got.Name())
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestEnsureCustomerCommandHandler_Handle_CreatesWhenMissing(t *testing.T) {
	ctx := t.Context()
	newID := kernel.NewUUID()

	cmd, err := commands.NewEnsureCustomerCommand(newID, "João",
		"joao@example.com", "")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "joao@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "joao@example.com")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEnsureCustomerCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, got.ID().IsEqual(newID))
	assert.Equal(t, "João", got.Name())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewEnsureCustomerCommand_Validation(t *testing.T) {
	_, err := commands.NewEnsureCustomerCommand(kernel.NewUUID(), "", "a@b.c", "")
	require.Error(t, err)

	_, err = commands.NewEnsureCustomerCommand(kernel.NewUUID(), "Maria", "", "")
	require.Error(t, err)
}
