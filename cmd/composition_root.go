package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/kafka/orderevents"
	memoryidempotency "orders/internal/adapters/out/memory/idempotency"
	"orders/internal/adapters/out/memory/orderrepo"
	redisidempotency "orders/internal/adapters/out/redis/idempotency"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/jobs"
	"orders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// CompositionRoot owns the process-wide dependencies and builds handlers on demand.
type CompositionRoot struct {
	configs     Config
	logger      *slog.Logger
	orders      ports.OrderRepository
	ids         kernel.IdentityProvider
	idempotency ports.IdempotencyStore
	purger      jobs.ExpiredKeyPurger
	events      ports.OrderEventPublisher
	metrics     *metrics.ServerMetrics
	redisClient *redis.Client
	kafka       *orderevents.KafkaPublisher
}

// NewCompositionRoot keeps idempotency keys in Redis when REDIS_ADDR is set and in
// process memory otherwise. An unreachable Redis is an error. Accepted orders are
// published to Kafka only when KAFKA_BROKERS is set.
func NewCompositionRoot(ctx context.Context, configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		configs: configs,
		logger:  logger,
		orders:  orderrepo.NewInMemoryOrderRepository(),
		ids:     kernel.NewSystemIdentityProvider(),
		metrics: metrics.NewServerMetrics(configs.ServiceName),
	}

	if len(configs.KafkaBrokers) > 0 {
		root.kafka = orderevents.NewKafkaPublisher(configs.KafkaBrokers, configs.KafkaOrdersTopic)
		root.events = root.kafka
		logger.Info("Order events published to kafka", "brokers", configs.KafkaBrokers, "topic", configs.KafkaOrdersTopic)
	} else {
		logger.Info("Order events disabled, KAFKA_BROKERS is not set")
	}

	if configs.RedisAddr == "" {
		store := memoryidempotency.NewInMemoryStore(configs.IdempotencyTTL)
		root.idempotency = store
		root.purger = store
		logger.Info("Idempotency keys kept in memory")
		return root, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		_ = root.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", configs.RedisAddr, err)
	}

	root.redisClient = client
	root.idempotency = redisidempotency.NewRedisStore(client, configs.ServiceName, configs.IdempotencyTTL)
	logger.Info("Idempotency keys kept in redis", "addr", configs.RedisAddr)
	return root, nil
}

// CreateCreateOrderCommandHandler builds the create handler over the shared store,
// identity provider, idempotency store and order event publisher.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.ids, c.idempotency, c.events)
}

// CreateUpdateOrderCommandHandler builds the update handler over the shared store.
func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orders)
}

// CreateChangeOrderStatusCommandHandler builds the status change handler over the shared store.
func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orders)
}

// CreateGetOrderQueryHandler builds the single order query handler.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

// CreateListOrdersQueryHandler builds the order listing query handler.
func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

// CreateServer wires every order use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.logger,
	)
}

// CreateRouter returns an echo instance serving the order API and the operational endpoints.
func (c *CompositionRoot) CreateRouter() *echo.Echo {
	return httpadapter.NewRouter(httpadapter.RouterConfig{
		ServiceName:  c.configs.ServiceName,
		AllowOrigins: c.configs.CORSOrigins,
	}, c.CreateServer(), c.metrics, c.logger)
}

// CreateJobManager schedules the backlog report and, for in-memory idempotency keys,
// the purge job.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.Schedules{
			BacklogReport:    c.configs.BacklogReportSchedule,
			IdempotencyPurge: c.configs.IdempotencyPurgeSchedule,
		},
		c.CreateListOrdersQueryHandler(),
		c.metrics,
		c.purger,
		c.logger,
	)
}

// Close flushes pending order events and releases external connections.
func (c *CompositionRoot) Close() error {
	var errs []error
	if c.kafka != nil {
		errs = append(errs, c.kafka.Close())
	}
	if c.redisClient != nil {
		errs = append(errs, c.redisClient.Close())
	}
	return errors.Join(errs...)
}
