// Package metrics holds the Prometheus collectors of the service on a private registry.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orders"

// ServerMetrics holds the collectors exposed on /metrics.
type ServerMetrics struct {
	registry  *prometheus.Registry
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
	Backlog   *prometheus.GaugeVec
}

// NewServerMetrics registers HTTP, backlog and runtime collectors. service becomes the
// metric subsystem, with characters Prometheus does not allow replaced by '_'.
func NewServerMetrics(service string) *ServerMetrics {
	subsystem := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, service)

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"handler", "method"})
	backlog := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "backlog_orders",
		Help:      "Orders per status at the last backlog report.",
	}, []string{"status"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		requests,
		latency,
		backlog,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &ServerMetrics{
		registry:  registry,
		Requests:  requests,
		LatencyMS: latency,
		Backlog:   backlog,
	}
}

// SetBacklog records how many orders are currently in status.
func (m *ServerMetrics) SetBacklog(status string, n int) {
	m.Backlog.WithLabelValues(status).Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
