package commands_test

import (
	"errors"
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	prod := storedProduct(t, "Embroidered towel", "35.00", 10)

	items := []commands.CreateOrderItem{{ProductID: prod.ID(), Quantity: 2}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		items, kernel.ZeroMoney(), nil, order.Pix, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("CountCreatedOn", ctx, mock.AnythingOfType("time.Time")).Return(int64(4), nil).Once(),
		productRepo.On("Get", ctx, prod.ID()).Return(prod, nil).Once(),
		productRepo.On("Reserve", ctx, prod.ID(), 2).Return(nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// Sequence 5 on top of 4 existing orders today.
	assert.Regexp(t, `^PED-\d{8}-0005$`, created.Number())
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, "70.00", created.TotalAmount().String())
	require.Len(t, created.Items(), 1)
	assert.Equal(t, prod.Name(), created.Items()[0].ProductName())

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PriceOverride(t *testing.T) {
	ctx := t.Context()
	prod := storedProduct(t, "Embroidered towel", "35.00", 10)
	override := mustMoney(t, "30.00")

	items := []commands.CreateOrderItem{{ProductID: prod.ID(), Quantity: 1, UnitPriceOverride: &override}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		items, kernel.ZeroMoney(), nil, order.Cash, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("CountCreatedOn", ctx, mock.Anything).Return(int64(0), nil)
	orderRepo.On("Add", ctx, mock.Anything).Return(nil)
	productRepo.On("Get", ctx, prod.ID()).Return(prod, nil)
	productRepo.On("Reserve", ctx, prod.ID(), 1).Return(nil)

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "30.00", created.Items()[0].UnitPrice().String())
	assert.Equal(t, "30.00", created.TotalAmount().String())
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	prod := storedProduct(t, "Embroidered towel", "35.00", 1)

	items := []commands.CreateOrderItem{{ProductID: prod.ID(), Quantity: 3}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		items, kernel.ZeroMoney(), nil, order.Pix, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		orderRepo.On("CountCreatedOn", ctx, mock.Anything).Return(int64(0), nil).Once(),
		productRepo.On("Get", ctx, prod.ID()).Return(prod, nil).Once(),
		productRepo.On("Reserve", ctx, prod.ID(), 3).Return(product.ErrInsufficientStock).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, product.ErrInsufficientStock)

	var stockErr *product.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Embroidered towel", stockErr.ProductName)
	assert.Equal(t, 3, stockErr.Requested)

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderStockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(ctx, commands.CreateOrderCommand{})
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	prod := storedProduct(t, "Embroidered towel", "35.00", 10)

	items := []commands.CreateOrderItem{{ProductID: prod.ID(), Quantity: 1}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
		items, kernel.ZeroMoney(), nil, order.Pix, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("ProductRepository").Return(productRepo)
	uow.On("Commit", ctx).Return(errors.New("commit error"))
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("CountCreatedOn", ctx, mock.Anything).Return(int64(0), nil)
	orderRepo.On("Add", ctx, mock.Anything).Return(nil)
	productRepo.On("Get", ctx, prod.ID()).Return(prod, nil)
	productRepo.On("Reserve", ctx, prod.ID(), 1).Return(nil)

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
