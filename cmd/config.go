package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
)

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"

	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
	BrokerNone     = "none"
)

type Config struct {
	HTTPPort string
	LogLevel string

	StoreDriver string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	MongoURI    string
	MongoDB     string

	RedisAddr     string
	RedisPassword string

	JWTSecret         string
	SessionTTL        time.Duration
	AdminEmail        string
	AdminPasswordHash string

	EventBroker            string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RabbitMQURL            string
	RabbitMQExchange       string

	DispatchSchedule string
}

// ConfigFromEnv reads the configuration through getenv, filling in defaults for
// optional keys.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	ttl, err := time.ParseDuration(get("SESSION_TTL", "24h"))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("SESSION_TTL", err)
	}

	c := Config{
		HTTPPort:               get("HTTP_PORT", "8080"),
		LogLevel:               get("LOG_LEVEL", "info"),
		StoreDriver:            get("STORE_DRIVER", StorePostgres),
		DBHost:                 get("DB_HOST", "localhost"),
		DBPort:                 get("DB_PORT", "5432"),
		DBUser:                 get("DB_USER", ""),
		DBPassword:             get("DB_PASSWORD", ""),
		DBName:                 get("DB_NAME", "logistics"),
		DBSslMode:              get("DB_SSLMODE", "disable"),
		MongoURI:               get("MONGO_URI", "mongodb://localhost:27017/?replicaSet=rs0"),
		MongoDB:                get("MONGO_DB", "logistics"),
		RedisAddr:              get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          get("REDIS_PASSWORD", ""),
		JWTSecret:              get("JWT_SECRET", ""),
		SessionTTL:             ttl,
		AdminEmail:             get("ADMIN_EMAIL", ""),
		AdminPasswordHash:      get("ADMIN_PASSWORD_HASH", ""),
		EventBroker:            get("EVENT_BROKER", BrokerNone),
		KafkaHost:              get("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: get("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		RabbitMQURL:            get("RABBITMQ_URL", ""),
		RabbitMQExchange:       get("RABBITMQ_EXCHANGE", "orders"),
		DispatchSchedule:       get("DISPATCH_SCHEDULE", ""),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the keys required by the selected store and broker are present.
func (c Config) Validate() error {
	var storeErr, brokerErr, ttlErr, secretErr error

	switch c.StoreDriver {
	case StorePostgres:
		if c.DBUser == "" {
			storeErr = errs.NewValueIsRequiredError("DB_USER")
		}
	case StoreMongo:
	default:
		storeErr = fmt.Errorf("%w: STORE_DRIVER must be %s or %s",
			errs.ErrValueIsInvalid, StorePostgres, StoreMongo)
	}

	switch c.EventBroker {
	case BrokerKafka:
		if c.KafkaHost == "" {
			brokerErr = errs.NewValueIsRequiredError("KAFKA_HOST")
		}
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" {
			brokerErr = errs.NewValueIsRequiredError("RABBITMQ_URL")
		}
	case BrokerNone:
	default:
		brokerErr = fmt.Errorf("%w: EVENT_BROKER must be %s, %s or %s",
			errs.ErrValueIsInvalid, BrokerKafka, BrokerRabbitMQ, BrokerNone)
	}

	if c.SessionTTL <= 0 {
		ttlErr = errs.NewValueIsOutOfRangeError("SESSION_TTL", c.SessionTTL, "1ns", "unbounded")
	}
	if c.JWTSecret == "" {
		secretErr = errs.NewValueIsRequiredError("JWT_SECRET")
	}

	return errors.Join(storeErr, brokerErr, ttlErr, secretErr)
}

func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
