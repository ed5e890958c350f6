package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/events"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/application/auth"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
	"logistics/internal/observability"
	"logistics/internal/pkg/password"

	"github.com/labstack/echo/v4"
)

const tokenIssuer = "logistics"

type CompositionRoot struct {
	cfg        Config
	store      Store
	broker     Broker
	hub        *events.Hub
	metrics    *observability.Metrics
	publisher  ports.EventPublisher
	sessions   auth.SessionStore
	closeRedis func() error
	hasher     *password.Hasher
	logger     *slog.Logger
}

// NewCompositionRoot connects to the configured store, broker and session store.
// Whatever was opened before a failure is closed again.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	store, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	broker, err := OpenBroker(cfg, logger)
	if err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	metrics := observability.NewMetrics()
	hub := events.NewHub(logger)
	publishers := []ports.EventPublisher{hub}
	if broker.Publisher != nil {
		publishers = append(publishers, broker.Publisher)
	}

	redisClient := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword)

	return &CompositionRoot{
		cfg:        cfg,
		store:      store,
		broker:     broker,
		hub:        hub,
		metrics:    metrics,
		publisher:  observability.NewCountingPublisher(events.NewFanOut(publishers...), metrics),
		sessions:   redis.NewSessionStore(redisClient),
		closeRedis: redisClient.Close,
		hasher:     password.NewHasher(0),
		logger:     logger,
	}, nil
}

// Close releases every connection. The live feed is closed first so that no client
// waits on a publisher that is going away.
func (c *CompositionRoot) Close(ctx context.Context) error {
	c.hub.Close()
	return errors.Join(
		c.broker.Close(),
		c.closeRedis(),
		c.store.Close(ctx),
	)
}

func (c *CompositionRoot) notifier() commands.Notifier {
	return commands.NewNotifier(c.publisher, c.logger)
}

func (c *CompositionRoot) uowFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.store.UoWFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.store.UoWFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.store.UoWFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.store.UoWFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactory(), c.notifier())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.uowFactory(), c.notifier())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier())
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.uowFactory(), c.notifier())
}

func (c *CompositionRoot) CreateDispatchPendingOrderCommandHandler() commands.DispatchPendingOrderCommandHandler {
	return commands.NewDispatchPendingOrderCommandHandler(c.uowFactory(), c.notifier())
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.customerUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateVerifyDriverDocumentsCommandHandler() commands.VerifyDriverDocumentsCommandHandler {
	return commands.NewVerifyDriverDocumentsCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateSetDriverStatusCommandHandler() commands.SetDriverStatusCommandHandler {
	return commands.NewSetDriverStatusCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateSetCustomerStatusCommandHandler() commands.SetCustomerStatusCommandHandler {
	return commands.NewSetCustomerStatusCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateAuthService() *auth.Service {
	return auth.NewService(
		c.store.UoWFactory,
		c.hasher,
		c.sessions,
		auth.NewJWTCodec(c.cfg.JWTSecret, tokenIssuer),
		auth.AdminCredentials{Email: c.cfg.AdminEmail, PasswordHash: c.cfg.AdminPasswordHash},
		c.cfg.SessionTTL,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		AssignDriver:          c.CreateAssignDriverCommandHandler(),
		AdvanceOrder:          c.CreateAdvanceOrderCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		RateOrder:             c.CreateRateOrderCommandHandler(),
		RegisterCustomer:      c.CreateRegisterCustomerCommandHandler(),
		RegisterDriver:        c.CreateRegisterDriverCommandHandler(),
		VerifyDriverDocuments: c.CreateVerifyDriverDocumentsCommandHandler(),
		SetDriverStatus:       c.CreateSetDriverStatusCommandHandler(),
		SetCustomerStatus:     c.CreateSetCustomerStatusCommandHandler(),

		ListOrders:    queries.NewListOrdersQueryHandler(c.store.Orders),
		GetOrder:      queries.NewGetOrderQueryHandler(c.store.Orders),
		ListDrivers:   queries.NewListDriversQueryHandler(c.store.Drivers),
		GetDriver:     queries.NewGetDriverQueryHandler(c.store.Drivers),
		ListCustomers: queries.NewListCustomersQueryHandler(c.store.Customers),
		Dashboard:     queries.NewDashboardQueryHandler(c.store.Orders, c.store.Drivers, c.store.Customers),
		Quote:         queries.NewQuoteQueryHandler(),
	}
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(c.CreateHTTPHandlers(), c.CreateAuthService(), c.logger)
	e, err := httpin.NewRouter(httpin.RouterConfig{
		Server:   server,
		Feed:     c.hub,
		Observer: c.metrics,
		Metrics:  c.metrics.Handler(),
		Health:   c.store.Ping,
		Logger:   c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	return e, nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.cfg.DispatchSchedule, c.CreateDispatchPendingOrderCommandHandler(), c.metrics, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
