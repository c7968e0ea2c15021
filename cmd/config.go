package cmd

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"orders/internal/adapters/out/kafka/orderevents"

	"github.com/labstack/gommon/log"
	"github.com/robfig/cron/v3"
)

const (
	defaultHTTPPort                 = "8000"
	defaultServiceName              = "orders-producer"
	defaultIdempotencyTTL           = 24 * time.Hour
	defaultBacklogReportSchedule    = "0 * * * * *"
	defaultIdempotencyPurgeSchedule = "0 */5 * * * *"
)

// devOrigins are always allowed so the kitchen board works from a local Vite server.
var devOrigins = []string{"http://127.0.0.1:5173", "http://localhost:5173"}

// Config is the process configuration, read from the environment by LoadConfig.
type Config struct {
	HTTPPort                 string
	LogLevel                 slog.Level
	CORSOrigins              []string
	ServiceName              string
	RedisAddr                string
	RedisPassword            string
	IdempotencyTTL           time.Duration
	BacklogReportSchedule    string
	IdempotencyPurgeSchedule string
	KafkaBrokers             []string
	KafkaOrdersTopic         string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv, and fills
// defaults for unset keys.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:                 valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		ServiceName:              valueOr(getenv("SERVICE_NAME"), defaultServiceName),
		RedisAddr:                strings.TrimSpace(getenv("REDIS_ADDR")),
		RedisPassword:            getenv("REDIS_PASSWORD"),
		IdempotencyTTL:           defaultIdempotencyTTL,
		BacklogReportSchedule:    valueOr(getenv("BACKLOG_REPORT_SCHEDULE"), defaultBacklogReportSchedule),
		IdempotencyPurgeSchedule: valueOr(getenv("IDEMPOTENCY_PURGE_SCHEDULE"), defaultIdempotencyPurgeSchedule),
		KafkaBrokers:             orderevents.ParseBrokers(getenv("KAFKA_BROKERS")),
		KafkaOrdersTopic:         valueOr(getenv("KAFKA_ORDERS_TOPIC"), orderevents.DefaultTopic),
	}

	if port, err := strconv.Atoi(cfg.HTTPPort); err != nil || port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("HTTP_PORT %q is not a valid port", cfg.HTTPPort)
	}

	if raw := getenv("LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	if raw := getenv("IDEMPOTENCY_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("IDEMPOTENCY_TTL: %w", err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("IDEMPOTENCY_TTL must be positive, got %s", ttl)
		}
		cfg.IdempotencyTTL = ttl
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	for key, schedule := range map[string]string{
		"BACKLOG_REPORT_SCHEDULE":    cfg.BacklogReportSchedule,
		"IDEMPOTENCY_PURGE_SCHEDULE": cfg.IdempotencyPurgeSchedule,
	} {
		if _, err := parser.Parse(schedule); err != nil {
			return Config{}, fmt.Errorf("%s: %w", key, err)
		}
	}

	for _, origin := range strings.Split(getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" && !slices.Contains(cfg.CORSOrigins, origin) {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}
	for _, origin := range devOrigins {
		if !slices.Contains(cfg.CORSOrigins, origin) {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}

// EchoLogLevel maps LogLevel onto the gommon levels echo's own logger uses.
func (c Config) EchoLogLevel() log.Lvl {
	switch {
	case c.LogLevel <= slog.LevelDebug:
		return log.DEBUG
	case c.LogLevel <= slog.LevelInfo:
		return log.INFO
	case c.LogLevel <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}

func valueOr(value, fallback string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return fallback
}
