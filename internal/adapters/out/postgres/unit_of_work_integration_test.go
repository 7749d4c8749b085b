package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	postgres_adapter "shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/pgtest"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockOrderEventPublisher struct {
	mock.Mock
}

func (m *MockOrderEventPublisher) Publish(ctx context.Context, aggregates ...*order.Order) error {
	args := m.Called(ctx, aggregates)
	return args.Error(0)
}

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	publisher *MockOrderEventPublisher
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.publisher = new(MockOrderEventPublisher)
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.database.DB, suite.publisher, slog.Default())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Stop(context.Background()))
	}
}

// seed stores a member and an item outside of any unit of work under test.
func (suite *UnitOfWorkIntegrationTestSuite) seed(stock int) (*member.Member, *item.Item) {
	ctx := context.Background()
	uow := postgres_adapter.NewGormUnitOfWorkFactory(suite.database.DB, nil, nil).Create()

	kim, err := pgtest.NewMember("")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MemberRepository().Add(ctx, kim))

	book, err := pgtest.NewItem("Book", 10000, stock)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ItemRepository().Add(ctx, book))

	return kim, book
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.MemberRepository())
	suite.NotNil(uow1.ItemRepository())
	suite.NotNil(uow1.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PlaceOrderCommitsAndPublishes() {
	ctx := context.Background()
	kim, book := suite.seed(10)
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	o, err := services.NewOrderPlacer().Place(kim, book, 2)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.ItemRepository().UpdateStock(ctx, book))

	suite.publisher.On("Publish", ctx, []*order.Order{o}).Return(nil).Once()
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	stored, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("20000", stored.TotalPrice().Amount().String())
	storedBook, err := check.ItemRepository().Get(ctx, book.ID())
	suite.Require().NoError(err)
	suite.Equal(8, storedBook.StockQuantity())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWholeCascade() {
	ctx := context.Background()
	kim, book := suite.seed(10)
	o, err := services.NewOrderPlacer().Place(kim, book, 2)
	suite.Require().NoError(err)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, o))
	suite.Require().NoError(setup.ItemRepository().UpdateStock(ctx, book))
	suite.Require().NoError(setup.Commit(ctx))
	suite.publisher.Calls = nil

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Cancel())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.ItemRepository().UpdateStock(ctx, loaded.Lines()[0].Item()))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	stored, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ordered, stored.Status())
	storedBook, err := check.ItemRepository().Get(ctx, book.ID())
	suite.Require().NoError(err)
	suite.Equal(8, storedBook.StockQuantity())
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PublishFailureKeepsCommit() {
	ctx := context.Background()
	kim, book := suite.seed(10)
	o, err := services.NewOrderPlacer().Place(kim, book, 1)
	suite.Require().NoError(err)
	suite.publisher.On("Publish", ctx, []*order.Order{o}).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	kim, book := suite.seed(10)
	placer := services.NewOrderPlacer()
	order1, err := placer.Place(kim, book, 1)
	suite.Require().NoError(err)
	order2, err := placer.Place(kim, book, 1)
	suite.Require().NoError(err)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "UOW1 should not see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "UOW2 should not see order1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	check := suite.factory.Create()
	_, err = check.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = check.OrderRepository().Get(ctx, order2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Order2 should not persist after rollback")
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
