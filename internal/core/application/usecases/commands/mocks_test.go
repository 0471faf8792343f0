package commands_test

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/payment"
	"atelier/internal/core/domain/model/product"
	"atelier/internal/core/domain/model/production"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(_ context.Context, _ *product.Product) error { return nil }
func (m *MockProductRepository) Update(_ context.Context, _ *product.Product) error {
	return nil
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetAllActive(_ context.Context) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockProductRepository) Reserve(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}
func (m *MockProductRepository) Release(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByNumber(_ context.Context, _ string) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockCustomerRepository) Update(_ context.Context, _ *customer.Customer) error {
	return nil
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockPaymentRepository) Get(_ context.Context, _ kernel.UUID) (*payment.Payment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPaymentRepository) GetByExternalID(ctx context.Context, externalID string) (*payment.Payment, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetStalePending(_ context.Context, _ time.Time) ([]*payment.Payment, error) {
	return nil, errors.New("not implemented in mock")
}

type MockProductionOrderRepository struct{ mock.Mock }

func (m *MockProductionOrderRepository) Add(ctx context.Context, aggregate *production.ProductionOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockProductionOrderRepository) Update(ctx context.Context, aggregate *production.ProductionOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockProductionOrderRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*production.ProductionOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.ProductionOrder), args.Error(1)
}

// MockUoW satisfies every narrow unit-of-work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) ProductionOrderRepository() ports.ProductionOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductionOrderRepository)
}

type MockOrderStockUoWFactory struct{ mock.Mock }

func (m *MockOrderStockUoWFactory) Create() commands.OrderStockUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStockUoW)
}

type MockOrderCustomerUoWFactory struct{ mock.Mock }

func (m *MockOrderCustomerUoWFactory) Create() commands.OrderCustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCustomerUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockPaymentIntentUoWFactory struct{ mock.Mock }

func (m *MockPaymentIntentUoWFactory) Create() commands.PaymentIntentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentIntentUoW)
}

type MockProductionUoWFactory struct{ mock.Mock }

func (m *MockProductionUoWFactory) Create() commands.ProductionUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductionUoW)
}

type MockPaymentProvider struct{ mock.Mock }

func (m *MockPaymentProvider) CreateCharge(
	ctx context.Context,
	amount kernel.Money,
	description string,
	payerEmail string,
) (ports.ProviderCharge, error) {
	args := m.Called(ctx, amount, description, payerEmail)
	return args.Get(0).(ports.ProviderCharge), args.Error(1)
}
func (m *MockPaymentProvider) GetChargeStatus(ctx context.Context, externalID string) (string, error) {
	args := m.Called(ctx, externalID)
	return args.String(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderStatusChange(
	ctx context.Context,
	ord *order.Order,
	cust *customer.Customer,
) error {
	args := m.Called(ctx, ord, cust)
	return args.Error(0)
}
