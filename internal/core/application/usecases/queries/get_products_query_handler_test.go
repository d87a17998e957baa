package queries_test

import (
	"context"
	"testing"
	"time"

	"bottleshop/internal/adapters/out/postgres/productrepo"
	"bottleshop/internal/core/application/usecases/queries"
	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetProductsQueryHandlerTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	productRepository *productrepo.GormProductRepository
	handler           queries.GetProductsQueryHandler
}

func (suite *GetProductsQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.productRepository = productrepo.NewGormProductRepository(db, stubTracker{})
	suite.handler = queries.NewGetProductsQueryHandler(db)
}

func (suite *GetProductsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetProductsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products").Error
	suite.Require().NoError(err)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetProductsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_WholeCatalog_ReturnsEveryVendor() {
	ctx := context.Background()
	vendorA := kernel.NewUUID()
	vendorB := kernel.NewUUID()

	suite.addProduct(ctx, vendorA, "Porter", 650)
	suite.addProduct(ctx, vendorB, "Stout", 720)

	result, err := suite.handler.Handle(ctx, queries.NewGetProductsQuery())
	suite.Require().NoError(err)

	suite.Len(result, 2)
}

func (suite *GetProductsQueryHandlerTestSuite) TestHandle_VendorFilter_ReturnsOwnProductsOnly() {
	ctx := context.Background()
	vendorA := kernel.NewUUID()
	vendorB := kernel.NewUUID()

	own := suite.addProduct(ctx, vendorA, "Porter", 650)
	suite.addProduct(ctx, vendorB, "Stout", 720)

	query, err := queries.NewGetVendorProductsQuery(vendorA)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(own.ID(), result[0].ProductID)
	suite.Equal(vendorA, result[0].VendorID)
	suite.Equal("Porter", result[0].Name)
	suite.Equal(int64(650), result[0].Price)
	suite.Equal(12, result[0].Stock)
}

func (suite *GetProductsQueryHandlerTestSuite) addProduct(
	ctx context.Context, vendorID kernel.UUID, name string, amount int64,
) *product.Product {
	price, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)

	prd, err := product.NewProduct(
		kernel.NewUUID(), vendorID, name, "bottle conditioned",
		"/uploads/bottle.png", price, 12, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepository.Add(ctx, prd))
	return prd
}

func TestGetProductsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProductsQueryHandlerTestSuite))
}
