package cmd

import (
	"log/slog"

	"agrilink/internal/adapters/in/http"
	"agrilink/internal/adapters/out/inmem"
	"agrilink/internal/adapters/out/postgres"
	redisadapter "agrilink/internal/adapters/out/redis"
	"agrilink/internal/core/application/usecases/commands"
	"agrilink/internal/core/application/usecases/queries"
	"agrilink/internal/core/ports"
	"agrilink/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	offerIndex ports.OfferIndex
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var index ports.OfferIndex
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		index = redisadapter.NewOfferIndex(client)
	} else {
		index = inmem.NewOfferIndex()
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		offerIndex: index,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateEscalateRoleCommandHandler() commands.EscalateRoleCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEscalateRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateReportHarvestCommandHandler() commands.ReportHarvestCommandHandler {
	var f commands.LotUoWFactory = FuncLotUoWFactory(func() commands.LotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportHarvestCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOfferCommandHandler() commands.PlaceOfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOfferCommandHandler(f, c.offerIndex, c.logger)
}

func (c *CompositionRoot) CreateSetOfferActivityCommandHandler() commands.SetOfferActivityCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOfferActivityCommandHandler(f, c.offerIndex, c.logger)
}

func (c *CompositionRoot) CreateCreateDispatchCommandHandler() commands.CreateDispatchCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDispatchCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRefreshOfferIndexCommandHandler() commands.RefreshOfferIndexCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshOfferIndexCommandHandler(f, c.offerIndex)
}

func (c *CompositionRoot) CreateFindMatchQueryHandler() queries.FindMatchQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewFindMatchQueryHandler(
		uow.LotRepository(), uow.OfferRepository(), c.offerIndex, c.logger)
}

func (c *CompositionRoot) CreateGetPendingLotsQueryHandler() queries.GetPendingLotsQueryHandler {
	return queries.NewGetPendingLotsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOffersQueryHandler() queries.GetActiveOffersQueryHandler {
	return queries.NewGetActiveOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDispatchOrderQueryHandler() queries.GetDispatchOrderQueryHandler {
	return queries.NewGetDispatchOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMarketFeedQueryHandler() queries.GetMarketFeedQueryHandler {
	return queries.NewGetMarketFeedQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateRegisterAccountCommandHandler(),
		c.CreateEscalateRoleCommandHandler(),
		c.CreateReportHarvestCommandHandler(),
		c.CreatePlaceOfferCommandHandler(),
		c.CreateSetOfferActivityCommandHandler(),
		c.CreateCreateDispatchCommandHandler(),
		c.CreateAdvanceDeliveryCommandHandler(),
		c.CreateFindMatchQueryHandler(),
		c.CreateGetPendingLotsQueryHandler(),
		c.CreateGetActiveOffersQueryHandler(),
		c.CreateGetDispatchOrderQueryHandler(),
		c.CreateGetMarketFeedQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRefreshOfferIndexCommandHandler(), c.logger)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncLotUoWFactory func() commands.LotUoW

func (f FuncLotUoWFactory) Create() commands.LotUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
