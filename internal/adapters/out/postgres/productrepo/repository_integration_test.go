package productrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"atelier/internal/adapters/out/postgres/productrepo"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/product"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository using PostgreSQL containers. Reserve and Release mutate
// the stock counter directly in SQL, so their concurrency guarantees can only
// be verified against a real database.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_ValidProduct_Success() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(10)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()

	err := suite.repository.Add(ctx, testProduct)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.Name(), retrieved.Name())
	suite.Equal(testProduct.Category(), retrieved.Category())
	suite.True(testProduct.Price().IsEqual(retrieved.Price()))
	suite.Equal(10, retrieved.Stock())
	suite.True(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_DoesNotTouchStock() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(10)
	suite.tracker.On("TrackAggregate", testProduct.ID(), mock.Anything)

	err := suite.repository.Add(ctx, testProduct)
	suite.Require().NoError(err)

	// Another actor reserves stock between our load and our save.
	suite.Require().NoError(suite.repository.Reserve(ctx, testProduct.ID(), 4))

	// The in-memory aggregate still carries the stale counter.
	newPrice, err := kernel.MoneyFromString("99.90")
	suite.Require().NoError(err)
	stale, err := product.RestoreProduct(testProduct.ID(), "Renamed", "", product.Clothing,
		newPrice, 10, "SKU-1", true, false)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, stale)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal("Renamed", retrieved.Name())
	suite.True(newPrice.IsEqual(retrieved.Price()))
	suite.Equal(6, retrieved.Stock(), "stock must only move through Reserve and Release")
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserve_EnoughStock_Decrements() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(5)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	err := suite.repository.Reserve(ctx, testProduct.ID(), 3)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserve_NotEnoughStock_ReturnsErrorAndKeepsStock() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(2)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	err := suite.repository.Reserve(ctx, testProduct.ID(), 3)
	suite.Require().ErrorIs(err, product.ErrInsufficientStock)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(2, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserve_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Reserve(ctx, kernel.NewUUID(), 1)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestReserve_ConcurrentRequests_NeverOversells() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(5)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	const workers = 10
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.repository.Reserve(ctx, testProduct.ID(), 1)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			suite.Require().ErrorIs(err, product.ErrInsufficientStock)
		}
	}
	suite.Equal(5, succeeded)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(0, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestRelease_RestoresStock() {
	ctx := context.Background()

	testProduct := suite.createTestProduct(5)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	suite.Require().NoError(suite.repository.Reserve(ctx, testProduct.ID(), 4))
	suite.Require().NoError(suite.repository.Release(ctx, testProduct.ID(), 4))

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(5, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllActive_SkipsInactiveProducts() {
	ctx := context.Background()

	active := suite.createTestProduct(3)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, active))

	price, err := kernel.MoneyFromString("10.00")
	suite.Require().NoError(err)
	inactive, err := product.RestoreProduct(kernel.NewUUID(), "Retired", "", product.Accessories,
		price, 0, "", false, false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, inactive))

	products, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Len(products, 1)
	suite.Equal(active.ID(), products[0].ID())
}

// createTestProduct creates a basic active product with the given stock.
func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(stock int) *product.Product {
	price, err := kernel.MoneyFromString("35.00")
	suite.Require().NoError(err)

	testProduct, err := product.NewProduct(kernel.NewUUID(), "Camiseta Bordada", product.Clothing, price, stock)
	suite.Require().NoError(err)
	return testProduct
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
