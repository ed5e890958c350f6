package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/mongo"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/rabbitmq"
	"logistics/internal/core/ports"
)

// Store is the persistence backend selected by STORE_DRIVER.
type Store struct {
	UoWFactory ports.UnitOfWorkFactory
	Orders     ports.OrderReader
	Drivers    ports.DriverReader
	Customers  ports.CustomerReader
	Ping       func(ctx context.Context) error
	Close      func(ctx context.Context) error
}

func OpenStore(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case StoreMongo:
		return openMongo(ctx, cfg, logger)
	default:
		return openPostgres(ctx, cfg, logger)
	}
}

func openPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	dsn := postgres.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSslMode,
	}.DSN()

	db, err := postgres.Open(dsn, logger)
	if err != nil {
		return Store{}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return Store{}, fmt.Errorf("postgres connection pool: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return Store{}, fmt.Errorf("ping postgres: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		_ = sqlDB.Close()
		return Store{}, err
	}

	logger.InfoContext(ctx, "store ready", "component", "store", "driver", StorePostgres, "host", cfg.DBHost)
	return Store{
		UoWFactory: postgres.NewGormUnitOfWorkFactory(db),
		Orders:     orderrepo.NewGormOrderReader(db),
		Drivers:    driverrepo.NewGormDriverReader(db),
		Customers:  customerrepo.NewGormCustomerReader(db),
		Ping:       sqlDB.PingContext,
		Close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}

func openMongo(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	client, err := mongo.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return Store{}, err
	}
	db := client.Database(cfg.MongoDB)
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return Store{}, err
	}

	logger.InfoContext(ctx, "store ready", "component", "store", "driver", StoreMongo, "database", cfg.MongoDB)
	return Store{
		UoWFactory: mongo.NewUnitOfWorkFactory(client, db),
		Orders:     mongo.NewOrderReader(db),
		Drivers:    mongo.NewDriverReader(db),
		Customers:  mongo.NewCustomerReader(db),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		Close: client.Disconnect,
	}, nil
}

// Broker is the message broker order events are published to, if any.
type Broker struct {
	Publisher ports.EventPublisher
	Close     func() error
}

func OpenBroker(cfg Config, logger *slog.Logger) (Broker, error) {
	switch cfg.EventBroker {
	case BrokerKafka:
		p := kafka.NewPublisher(cfg.KafkaBrokers(), cfg.KafkaOrderChangedTopic)
		logger.Info("publishing order events", "component", "broker", "broker", BrokerKafka, "topic", cfg.KafkaOrderChangedTopic)
		return Broker{Publisher: p, Close: p.Close}, nil
	case BrokerRabbitMQ:
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
		if err != nil {
			return Broker{}, err
		}
		logger.Info("publishing order events", "component", "broker", "broker", BrokerRabbitMQ, "exchange", cfg.RabbitMQExchange)
		return Broker{Publisher: p, Close: p.Close}, nil
	default:
		return Broker{Close: func() error { return nil }}, nil
	}
}
