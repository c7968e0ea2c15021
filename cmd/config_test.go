package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"orders/cmd"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(nil))

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "orders-producer", cfg.ServiceName)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, "0 * * * * *", cfg.BacklogReportSchedule)
	assert.Equal(t, []string{"http://127.0.0.1:5173", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, log.INFO, cfg.EchoLogLevel())
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "orders.new", cfg.KafkaOrdersTopic)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(map[string]string{
		"HTTP_PORT":               "9090",
		"LOG_LEVEL":               "debug",
		"CORS_ORIGINS":            "https://kitchen.example.com, http://localhost:5173,",
		"SERVICE_NAME":            "orders-api",
		"REDIS_ADDR":              " localhost:6379 ",
		"IDEMPOTENCY_TTL":         "90m",
		"BACKLOG_REPORT_SCHEDULE": "@every 30s",
		"KAFKA_BROKERS":           "kafka-1:9092, kafka-2:9092",
		"KAFKA_ORDERS_TOPIC":      "kitchen.orders",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, log.DEBUG, cfg.EchoLogLevel())
	assert.Equal(t, "orders-api", cfg.ServiceName)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 90*time.Minute, cfg.IdempotencyTTL)
	assert.Equal(t, "@every 30s", cfg.BacklogReportSchedule)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "kitchen.orders", cfg.KafkaOrdersTopic)
	assert.Equal(t, []string{
		"https://kitchen.example.com",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}, cfg.CORSOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"port not a number":   {"HTTP_PORT": "http"},
		"port out of range":   {"HTTP_PORT": "70000"},
		"unknown log level":   {"LOG_LEVEL": "loud"},
		"ttl not a duration":  {"IDEMPOTENCY_TTL": "tomorrow"},
		"ttl not positive":    {"IDEMPOTENCY_TTL": "0s"},
		"bad report schedule": {"BACKLOG_REPORT_SCHEDULE": "every minute"},
		"bad purge schedule":  {"IDEMPOTENCY_PURGE_SCHEDULE": "* * *"},
	}

	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := cmd.LoadConfig(env(values))

			require.Error(t, err)
		})
	}
}

func TestConfig_EchoLogLevel(t *testing.T) {
	tests := map[slog.Level]log.Lvl{
		slog.LevelDebug: log.DEBUG,
		slog.LevelInfo:  log.INFO,
		slog.LevelWarn:  log.WARN,
		slog.LevelError: log.ERROR,
	}

	for level, want := range tests {
		assert.Equal(t, want, cmd.Config{LogLevel: level}.EchoLogLevel(), level.String())
	}
}
