package productrepo_test

import (
	"context"
	"testing"
	"time"

	"bottleshop/internal/adapters/out/postgres/productrepo"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/product"
	"bottleshop/internal/pkg/errs"

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
// ProductRepository using PostgreSQL containers.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	productRepository *productrepo.GormProductRepository
	tracker           *MockAggregateTracker
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
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.productRepository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrips() {
	ctx := context.Background()

	original := suite.createProduct()
	suite.Require().NoError(suite.productRepository.Add(ctx, original))

	retrieved, err := suite.productRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.VendorID(), retrieved.VendorID())
	suite.Equal("Rioja Reserva", retrieved.Name())
	suite.Equal(int64(2199), retrieved.Price().Amount())
	suite.Equal(24, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.productRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsDetailsAndStock() {
	ctx := context.Background()

	original := suite.createProduct()
	suite.Require().NoError(suite.productRepository.Add(ctx, original))

	newPrice, err := kernel.NewMoney(2499)
	suite.Require().NoError(err)
	suite.Require().NoError(original.UpdateDetails(
		original.VendorID(), "Rioja Gran Reserva", "Extended oak ageing",
		"/uploads/gran-reserva.png", newPrice, 18))
	suite.Require().NoError(original.ReserveStock(3))

	suite.Require().NoError(suite.productRepository.Update(ctx, original))

	retrieved, err := suite.productRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal("Rioja Gran Reserva", retrieved.Name())
	suite.Equal(int64(2499), retrieved.Price().Amount())
	suite.Equal(15, retrieved.Stock())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.productRepository.Update(ctx, suite.createProduct())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) createProduct() *product.Product {
	price, err := kernel.NewMoney(2199)
	suite.Require().NoError(err)

	prd, err := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(), "Rioja Reserva", "Aged tempranillo",
		"/uploads/rioja.png", price, 24, time.Now().UTC())
	suite.Require().NoError(err)
	return prd
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
