package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/production"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedProductionOrder(t *testing.T, orderID kernel.UUID, stage production.Stage) *production.ProductionOrder {
	t.Helper()
	record, err := production.RestoreProductionOrder(orderID, stage, production.InProgress,
		"", time.Now())
	require.NoError(t, err)
	return record
}

func TestAdvanceProductionCommandHandler_Handle_CreatesLazily(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.InProduction)

	cmd, err := commands.NewAdvanceProductionCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productionRepo := new(MockProductionOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProductionOrderRepository").Return(productionRepo).Once(),
		productionRepo.On("GetByOrderID", ctx, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("orderID", aggregate.ID())).Once(),
		uow.On("ProductionOrderRepository").Return(productionRepo).Once(),
		productionRepo.On("Add", ctx, mock.AnythingOfType("*production.ProductionOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceProductionCommandHandler(factory)
	record, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// Fresh record starts at Embroidery, one advance lands on Sewing.
	assert.Equal(t, production.Sewing, record.Stage())

	orderRepo.AssertExpectations(t)
	productionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceProductionCommandHandler_Handle_OrderMissing(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAdvanceProductionCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID))

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAdvanceProductionCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRetreatProductionCommandHandler_Handle_ExistingRecord(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.InProduction)
	record := storedProductionOrder(t, aggregate.ID(), production.Finishing)

	cmd, err := commands.NewRetreatProductionCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productionRepo := new(MockProductionOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductionOrderRepository").Return(productionRepo)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)
	productionRepo.On("GetByOrderID", ctx, aggregate.ID()).Return(record, nil)
	productionRepo.On("Update", ctx, record).Return(nil)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRetreatProductionCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, production.Sewing, got.Stage())
	productionRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestUpdateProductionCommandHandler_Handle_PartialUpdate(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.InProduction)
	record := storedProductionOrder(t, aggregate.ID(), production.Sewing)

	status := production.Completed
	notes := "embroidery redone after thread break"
	cmd, err := commands.NewUpdateProductionCommand(aggregate.ID(), nil, &status, &notes)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productionRepo := new(MockProductionOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductionOrderRepository").Return(productionRepo)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)
	productionRepo.On("GetByOrderID", ctx, aggregate.ID()).Return(record, nil)
	productionRepo.On("Update", ctx, record).Return(nil)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateProductionCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, production.Sewing, got.Stage())
	assert.Equal(t, production.Completed, got.Status())
	assert.Equal(t, notes, got.Notes())
}

func TestNewUpdateProductionCommand_InvalidStage(t *testing.T) {
	bad := production.StageUnknown
	_, err := commands.NewUpdateProductionCommand(kernel.NewUUID(), &bad, nil, nil)
	require.Error(t, err)
}
