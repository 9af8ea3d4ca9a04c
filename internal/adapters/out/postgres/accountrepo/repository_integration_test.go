package accountrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"agrilink/internal/adapters/out/postgres/accountrepo"
	"agrilink/internal/core/domain/model/account"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/pkg/errs"

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

// AccountRepositoryIntegrationTestSuite verifies participant account
// persistence, including the unique handle constraint.
type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *accountrepo.GormAccountRepository
	tracker    *MockAggregateTracker
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&accountrepo.AccountDTO{}))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE accounts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = accountrepo.NewGormAccountRepository(suite.db, suite.tracker)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) createTestAccount(handle string, role account.Role) *account.Account {
	acc, err := account.NewAccount(kernel.NewUUID(), handle, role)
	suite.Require().NoError(err)
	return acc
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	acc := suite.createTestAccount("kano-farms", account.Producer)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, acc))

	loaded, err := suite.repository.Get(ctx, acc.ID())
	suite.Require().NoError(err)
	suite.True(acc.IsEqual(loaded))
	suite.Equal("kano-farms", loaded.Handle())
	suite.Equal(account.Producer, loaded.Role())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_DuplicateHandle_Rejected() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestAccount("kano-farms", account.Producer)))

	err := suite.repository.Add(ctx, suite.createTestAccount("kano-farms", account.Driver))
	suite.Require().Error(err)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdate_PersistsRoleChange() {
	ctx := context.Background()

	admin := suite.createTestAccount("marketplace-ops", account.Admin)
	acc := suite.createTestAccount("musa-trucks", account.Producer)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, admin))
	suite.Require().NoError(suite.repository.Add(ctx, acc))

	suite.Require().NoError(acc.Escalate(admin, account.Driver))
	suite.Require().NoError(suite.repository.Update(ctx, acc))

	loaded, err := suite.repository.Get(ctx, acc.ID())
	suite.Require().NoError(err)
	suite.Equal(account.Driver, loaded.Role())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGet_MissingAccount_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_ManyAccounts_AllRetrievable() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	accounts := make([]*account.Account, 0, 5)
	for i := 0; i < 5; i++ {
		acc := suite.createTestAccount(fmt.Sprintf("buyer-%d", i), account.BuyerOperator)
		suite.Require().NoError(suite.repository.Add(ctx, acc))
		accounts = append(accounts, acc)
	}

	for _, acc := range accounts {
		loaded, err := suite.repository.Get(ctx, acc.ID())
		suite.Require().NoError(err)
		suite.True(acc.IsEqual(loaded))
	}
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
