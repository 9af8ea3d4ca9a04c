package queries_test

import (
	"context"
	"testing"
	"time"

	"agrilink/internal/adapters/out/postgres/dispatchrepo"
	"agrilink/internal/adapters/out/postgres/lotrepo"
	"agrilink/internal/adapters/out/postgres/offerrepo"
	"agrilink/internal/core/application/usecases/queries"
	"agrilink/internal/core/domain/model/dispatch"
	"agrilink/internal/core/domain/model/kernel"
	"agrilink/internal/core/domain/model/lot"
	"agrilink/internal/core/domain/model/offer"
	"agrilink/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracking hook; the query
// handlers under test never take part in a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, interface{}) {}

// QueryHandlersIntegrationTestSuite exercises the read-side handlers against
// a real database, seeded through the same repositories the write side uses.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	lots       *lotrepo.GormLotRepository
	offers     *offerrepo.GormOfferRepository
	dispatches *dispatchrepo.GormDispatchRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&lotrepo.LotDTO{},
		&offerrepo.OfferDTO{},
		&dispatchrepo.DispatchOrderDTO{},
	))
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE lots, offers, dispatch_orders").Error)

	suite.lots = lotrepo.NewGormLotRepository(suite.db, noopTracker{})
	suite.offers = offerrepo.NewGormOfferRepository(suite.db, noopTracker{})
	suite.dispatches = dispatchrepo.NewGormDispatchRepository(suite.db, noopTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) mustCity(name string) kernel.City {
	city, err := kernel.NewCity(name)
	suite.Require().NoError(err)
	return city
}

func (suite *QueryHandlersIntegrationTestSuite) mustMoney(s string) kernel.Money {
	money, err := kernel.ParseMoney(s)
	suite.Require().NoError(err)
	return money
}

func (suite *QueryHandlersIntegrationTestSuite) seedLot(commodity, origin string, quantity int) *lot.HarvestLot {
	l, err := lot.NewHarvestLot(
		kernel.NewUUID(), kernel.NewUUID(), commodity, quantity, suite.mustCity(origin))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.lots.Add(context.Background(), l))
	return l
}

func (suite *QueryHandlersIntegrationTestSuite) seedOffer(price, destination string, commodities ...string) *offer.BuyerOffer {
	o, err := offer.NewBuyerOffer(
		kernel.NewUUID(), kernel.NewUUID(), commodities,
		suite.mustCity(destination), suite.mustMoney(price), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.offers.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPendingLots_FiltersByCommodityAndCity() {
	ctx := context.Background()

	onionsKano := suite.seedLot("onions", "Kano", 40)
	suite.seedLot("onions", "Jos", 10)
	suite.seedLot("rice", "Kano", 25)

	matched := suite.seedLot("onions", "Kano", 15)
	suite.Require().NoError(matched.MarkMatched())
	suite.Require().NoError(suite.lots.CompareAndSwapStatus(ctx, matched.ID(), lot.Pending, lot.Matched))

	handler := queries.NewGetPendingLotsQueryHandler(suite.db)

	resp, err := handler.Handle(ctx, queries.NewGetPendingLotsQuery("Onions", "Kano"))
	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.True(onionsKano.ID().IsEqual(resp[0].ID))
	suite.Equal("onions", resp[0].Commodity)
	suite.Equal("Kano", resp[0].OriginCity)
	suite.Equal(40, resp[0].Quantity)

	all, err := handler.Handle(ctx, queries.NewGetPendingLotsQuery("", ""))
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetActiveOffers_CommodityContainmentAndOrder() {
	ctx := context.Background()

	mid := suite.seedOffer("110.00", "Lagos", "onions", "tomatoes")
	top := suite.seedOffer("130.00", "Ibadan", "onions")
	suite.seedOffer("150.00", "Lagos", "rice")

	retired := suite.seedOffer("200.00", "Lagos", "onions")
	retired.Deactivate()
	suite.Require().NoError(suite.offers.Update(ctx, retired))

	handler := queries.NewGetActiveOffersQueryHandler(suite.db)

	resp, err := handler.Handle(ctx, queries.NewGetActiveOffersQuery("onions"))
	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)
	suite.True(top.ID().IsEqual(resp[0].ID))
	suite.True(mid.ID().IsEqual(resp[1].ID))
	suite.Equal("130.00", resp[0].Price.String())
	suite.ElementsMatch([]string{"onions", "tomatoes"}, resp[1].Commodities)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetDispatchOrder_ReturnsEconomics() {
	ctx := context.Background()

	order, err := dispatch.NewDispatchOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		suite.mustMoney("120.00"), suite.mustMoney("15.00"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dispatches.Add(ctx, order))

	handler := queries.NewGetDispatchOrderQueryHandler(suite.db)

	query, err := queries.NewGetDispatchOrderQuery(order.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(order.ID().IsEqual(resp.ID))
	suite.Equal("120.00", resp.AgreedPrice.String())
	suite.Equal("15.00", resp.TransportCost.String())
	suite.Equal("6.00", resp.PlatformFee.String())
	suite.Equal(dispatch.InTransit.String(), resp.Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetDispatchOrder_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetDispatchOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetDispatchOrderQueryHandler(suite.db)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetMarketFeed_JoinsSupplyAndDemand() {
	ctx := context.Background()

	suite.seedLot("onions", "Kano", 40)
	suite.seedLot("onions", "Jos", 10)
	suite.seedLot("yam", "Makurdi", 60)

	suite.seedOffer("110.00", "Lagos", "onions", "tomatoes")
	suite.seedOffer("130.00", "Ibadan", "onions")

	handler := queries.NewGetMarketFeedQueryHandler(suite.db)

	feed, err := handler.Handle(ctx, queries.NewGetMarketFeedQuery())
	suite.Require().NoError(err)
	suite.Require().Len(feed, 3)

	byCommodity := make(map[string]queries.GetMarketFeedQueryResponse, len(feed))
	for _, entry := range feed {
		byCommodity[entry.Commodity] = entry
	}

	onions := byCommodity["onions"]
	suite.Equal(2, onions.PendingLots)
	suite.Equal(50, onions.PendingQuantity)
	suite.Equal(2, onions.ActiveOffers)
	suite.Equal("130.00", onions.TopPrice.String())

	// Demand-only commodity still shows up with zero supply.
	tomatoes := byCommodity["tomatoes"]
	suite.Equal(0, tomatoes.PendingLots)
	suite.Equal(1, tomatoes.ActiveOffers)

	// Supply-only commodity shows up with zero top price.
	yam := byCommodity["yam"]
	suite.Equal(1, yam.PendingLots)
	suite.Equal(0, yam.ActiveOffers)
	suite.True(yam.TopPrice.IsZero())
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
