package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"orders/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerMetrics_Handler(t *testing.T) {
	m := metrics.NewServerMetrics("orders-producer")
	m.Requests.WithLabelValues("/api/v1/orders", http.MethodPost, "201").Inc()
	m.SetBacklog("pending", 3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `orders_orders_producer_http_requests_total{handler="/api/v1/orders",method="POST",status="201"} 1`)
	assert.Contains(t, string(body), `orders_orders_producer_backlog_orders{status="pending"} 3`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestServerMetrics_SetBacklogOverwrites(t *testing.T) {
	m := metrics.NewServerMetrics("svc")

	m.SetBacklog("ready", 5)
	m.SetBacklog("ready", 2)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Backlog.WithLabelValues("ready")), 0)
}

func TestNewServerMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NewServerMetrics("svc")
		metrics.NewServerMetrics("svc")
	})
}
