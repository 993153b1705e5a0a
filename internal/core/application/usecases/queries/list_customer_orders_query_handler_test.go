package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/categoryrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ListCustomerOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.ListCustomerOrdersQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	productRepo  *productrepo.GormProductRepository
	categoryRepo *categoryrepo.GormCategoryRepository
	customer     account.Actor
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(&suite.Suite)
	suite.Require().NoError(suite.db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&productrepo.ProductDTO{},
		&categoryrepo.CategoryDTO{},
	))

	suite.categoryRepo = categoryrepo.NewGormCategoryRepository(suite.db)
	suite.handler = queries.NewListCustomerOrdersQueryHandler(suite.db, suite.categoryRepo)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db, stubTracker{})
	suite.productRepo = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, products, categories").Error
	suite.Require().NoError(err)
	suite.customer = newActor(suite.T(), account.Customer)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_ScopedToCustomer() {
	ctx := context.Background()

	mine := suite.seedOrder(suite.customer.ID(), kernel.NewUUID())
	suite.seedOrder(kernel.NewUUID(), kernel.NewUUID()) // someone else's order

	query, err := queries.NewListCustomerOrdersQuery(
		suite.customer, nil, queries.OrderFilters{}, firstPage(suite.T()))
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.True(page.Items[0].ID.IsEqual(mine.ID()))
	suite.True(page.Items[0].CustomerID.IsEqual(suite.customer.ID()))
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_CategoryFilter_MatchesLineProducts() {
	ctx := context.Background()

	burgersID := kernel.NewUUID()
	drinksID := kernel.NewUUID()
	suite.Require().NoError(suite.categoryRepo.Add(ctx, burgersID, "Burgers"))
	suite.Require().NoError(suite.categoryRepo.Add(ctx, drinksID, "Drinks"))

	burger := suite.seedProduct(burgersID, "Bulgogi Burger", 1000)
	cola := suite.seedProduct(drinksID, "Cola", 500)

	burgerOrder := suite.seedOrderWithProduct(suite.customer.ID(), burger)
	suite.seedOrderWithProduct(suite.customer.ID(), cola)

	query, err := queries.NewListCustomerOrdersQuery(
		suite.customer, &burgersID, queries.OrderFilters{}, firstPage(suite.T()))
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.True(page.Items[0].ID.IsEqual(burgerOrder.ID()))
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_FiltersByTypeAndStatus() {
	ctx := context.Background()

	pickup := suite.seedOrderAt(suite.customer.ID(), order.Pickup, time.Now())
	delivery := suite.seedOrderAt(suite.customer.ID(), order.Delivery, time.Now())

	suite.Require().NoError(delivery.ProgressTo(order.Accepted))
	suite.Require().NoError(suite.orderRepo.Update(ctx, delivery))

	orderType := order.Delivery
	status := order.Accepted
	query, err := queries.NewListCustomerOrdersQuery(
		suite.customer, nil,
		queries.OrderFilters{OrderType: &orderType, Status: &status},
		firstPage(suite.T()))
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.True(page.Items[0].ID.IsEqual(delivery.ID()))
	suite.False(page.Items[0].ID.IsEqual(pickup.ID()))
	suite.Equal(order.Accepted, page.Items[0].Status)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_DateRangeAndSort() {
	ctx := context.Background()

	old := suite.seedOrderAt(suite.customer.ID(), order.Pickup, time.Now().Add(-48*time.Hour))
	recent := suite.seedOrderAt(suite.customer.ID(), order.Pickup, time.Now())

	from := time.Now().Add(-24 * time.Hour)
	query, err := queries.NewListCustomerOrdersQuery(
		suite.customer, nil,
		queries.OrderFilters{CreatedFrom: &from},
		firstPage(suite.T()))
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.True(page.Items[0].ID.IsEqual(recent.ID()))

	// Ascending sort over the full range puts the old order first.
	ascQuery, err := queries.NewListCustomerOrdersQuery(
		suite.customer, nil,
		queries.OrderFilters{SortAscending: true},
		firstPage(suite.T()))
	suite.Require().NoError(err)

	ascPage, err := suite.handler.Handle(ctx, ascQuery)
	suite.Require().NoError(err)
	suite.Require().Len(ascPage.Items, 2)
	suite.True(ascPage.Items[0].ID.IsEqual(old.ID()))
	suite.True(ascPage.Items[1].ID.IsEqual(recent.ID()))
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_CategoryAndStatusFiltersCombine() {
	ctx := context.Background()

	burgersID := kernel.NewUUID()
	suite.Require().NoError(suite.categoryRepo.Add(ctx, burgersID, "Burgers"))
	burger := suite.seedProduct(burgersID, "Bulgogi Burger", 1000)

	accepted := suite.seedOrderWithProduct(suite.customer.ID(), burger)
	suite.Require().NoError(accepted.ProgressTo(order.Accepted))
	suite.Require().NoError(suite.orderRepo.Update(ctx, accepted))
	suite.seedOrderWithProduct(suite.customer.ID(), burger) // still pending

	status := order.Accepted
	query, err := queries.NewListCustomerOrdersQuery(
		suite.customer, &burgersID,
		queries.OrderFilters{Status: &status},
		firstPage(suite.T()))
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(1), page.TotalCount)
	suite.Require().Len(page.Items, 1)
	suite.True(page.Items[0].ID.IsEqual(accepted.ID()))
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_UnknownCategory_ReturnsNotFoundError() {
	unknown := kernel.NewUUID()

	query, err := queries.NewListCustomerOrdersQuery(
		suite.customer, &unknown, queries.OrderFilters{}, firstPage(suite.T()))
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) TestHandle_StaffRole_ReturnsPermissionDenied() {
	query, err := queries.NewListCustomerOrdersQuery(
		newActor(suite.T(), account.Owner), nil, queries.OrderFilters{}, firstPage(suite.T()))
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrPermissionDenied)
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) seedProduct(
	categoryID kernel.UUID,
	name string,
	unitAmount int64,
) *product.Product {
	price, err := kernel.NewPrice(unitAmount)
	suite.Require().NoError(err)
	record, err := product.NewProduct(kernel.NewUUID(), categoryID, name, price)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(context.Background(), record))
	return record
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) seedOrder(
	customerID kernel.UUID,
	productID kernel.UUID,
) *order.Order {
	price, err := kernel.NewPrice(1000)
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), productID, "Bulgogi Burger", 1, price)
	suite.Require().NoError(err)

	placed, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), customerID,
		order.Pickup, "", "", []order.Line{line}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), placed))
	return placed
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) seedOrderAt(
	customerID kernel.UUID,
	orderType order.Type,
	createdAt time.Time,
) *order.Order {
	price, err := kernel.NewPrice(1000)
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Bulgogi Burger", 1, price)
	suite.Require().NoError(err)

	address := ""
	if orderType.RequiresAddress() {
		address = "12 Teheran-ro"
	}

	placed, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), customerID,
		orderType, address, "", []order.Line{line}, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), placed))
	return placed
}

func (suite *ListCustomerOrdersQueryHandlerTestSuite) seedOrderWithProduct(
	customerID kernel.UUID,
	record *product.Product,
) *order.Order {
	line, err := order.NewLine(
		kernel.NewUUID(), record.ID(), record.Name(), 1, record.UnitPrice())
	suite.Require().NoError(err)

	placed, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), customerID,
		order.Pickup, "", "", []order.Line{line}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), placed))
	return placed
}

func TestListCustomerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListCustomerOrdersQueryHandlerTestSuite))
}
