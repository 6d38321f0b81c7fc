package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apihttp "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/memory"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/shoprepo"
	"laundry/internal/adapters/out/postgres/ticketrepo"
	"laundry/internal/adapters/out/redis/geoindex"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"github.com/labstack/echo/v4"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CompositionRoot owns the outbound adapters and builds every use case from them.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger
	clock  kernel.Clock

	orders     ports.OrderRepository
	shops      ports.ShopRepository
	tickets    ports.TicketRepository
	uowFactory ports.UnitOfWorkFactory
	geo        ports.ShopGeoIndex

	closers []func() error
}

// NewCompositionRoot connects the storage selected by cfg and, when
// REDIS_ADDR is set, the shop geo index.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{cfg: cfg, logger: logger}

	var err error
	switch cfg.StorageDriver {
	case StorageMemory:
		root.useMemory()
	default:
		err = root.usePostgres(ctx)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RedisAddr != "" {
		if err = root.useGeoIndex(ctx); err != nil {
			return nil, errors.Join(err, root.Close())
		}
	}
	return root, nil
}

func (c *CompositionRoot) useMemory() {
	store := memory.NewStore()
	c.orders = store.OrderRepository()
	c.shops = store.ShopRepository()
	c.tickets = store.TicketRepository()
	c.uowFactory = memory.NewUnitOfWorkFactory(store)
	c.logger.Warn("using the in-memory store, data is lost on exit")
}

func (c *CompositionRoot) usePostgres(ctx context.Context) error {
	db, err := OpenDatabase(ctx, c.cfg.DSN())
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	c.closers = append(c.closers, sqlDB.Close)

	c.orders = orderrepo.NewGormOrderRepository(db, nil)
	c.shops = shoprepo.NewGormShopRepository(db, nil)
	c.tickets = ticketrepo.NewGormTicketRepository(db, nil)
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
	return nil
}

func (c *CompositionRoot) useGeoIndex(ctx context.Context) error {
	client := geoindex.NewClient(c.cfg.RedisAddr, c.cfg.RedisPassword, c.cfg.RedisDB)
	c.closers = append(c.closers, client.Close)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", c.cfg.RedisAddr, err)
	}
	c.geo = geoindex.New(client, geoindex.DefaultKey)
	return nil
}

// OpenDatabase opens a gorm connection with driver errors translated to gorm sentinels.
func OpenDatabase(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Close releases the connections opened by NewCompositionRoot.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

// CreateHTTPHandlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() apihttp.Handlers {
	shopFactory := commands.ShopUoWFactoryFrom(c.uowFactory)
	ticketFactory := commands.TicketUoWFactoryFrom(c.uowFactory)

	return apihttp.Handlers{
		CreateOrder:        commands.NewCreateOrderCommandHandler(c.orders, c.shops, c.clock, c.logger),
		TransitionOrder:    commands.NewTransitionOrderStatusCommandHandler(c.orders, c.shops, c.clock),
		CreateShop:         commands.NewCreateShopCommandHandler(shopFactory, c.geo, c.clock, c.logger),
		UpdateShop:         commands.NewUpdateShopCommandHandler(shopFactory, c.geo, c.clock, c.logger),
		ShopServices:       commands.NewShopServiceCommandHandler(shopFactory, c.clock),
		CreateTicket:       commands.NewCreateTicketCommandHandler(ticketFactory, c.clock),
		UpdateTicketStatus: commands.NewUpdateTicketStatusCommandHandler(ticketFactory, c.clock),

		GetOrder:           queries.NewGetOrderQueryHandler(c.orders, c.shops),
		ListCustomerOrders: queries.NewListCustomerOrdersQueryHandler(c.orders),
		ListShopOrders:     queries.NewListShopOrdersQueryHandler(c.orders, c.shops),
		GetShop:            queries.NewGetShopQueryHandler(c.shops),
		ListActiveShops:    queries.NewListActiveShopsQueryHandler(c.shops),
		FindNearbyShops:    queries.NewFindNearbyShopsQueryHandler(c.shops, c.geo, c.logger),
		ListShopServices:   queries.NewListShopServicesQueryHandler(c.shops),
		ShopStats:          queries.NewGetShopStatsQueryHandler(c.orders, c.shops),
		Dashboard:          queries.NewGetDashboardStatsQueryHandler(c.orders, c.shops, c.clock),
		Tickets:            queries.NewTicketQueryHandler(c.tickets),
	}
}

// CreateReconcileShopCountersCommandHandler wires the counter repair used by
// the scheduled job.
func (c *CompositionRoot) CreateReconcileShopCountersCommandHandler() *commands.ReconcileShopCountersCommandHandler {
	h := commands.NewReconcileShopCountersCommandHandler(c.shops, c.geo, c.logger)
	return &h
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileShopCountersCommandHandler(), c.cfg.ReconcileSchedule, c.logger)
}

// CreateAuthenticator builds the bearer token verifier. JWT_SECRET is required here.
func (c *CompositionRoot) CreateAuthenticator() (*apihttp.Authenticator, error) {
	return apihttp.NewAuthenticator(c.cfg.JWTSecret, c.cfg.JWTTTL)
}

// CreateEcho builds the HTTP server with every route mounted.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	auth, err := c.CreateAuthenticator()
	if err != nil {
		return nil, err
	}
	server := apihttp.NewServer(c.CreateHTTPHandlers())
	return apihttp.NewEcho(server, auth, apihttp.Options{
		AllowOrigins: c.cfg.CORSAllowOrigins,
		Logger:       c.logger,
	})
}
