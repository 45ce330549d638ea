package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors exposed on /metrics. Each server owns its
// registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	parseItemsTotal *prometheus.CounterVec
	parseDuration   *prometheus.HistogramVec
}

// NewMetrics creates and registers tabulad's collectors plus the standard
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabulad_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tabulad_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		parseItemsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tabulad_parse_items_total",
				Help: "Total number of rows or fields produced by parse requests",
			},
			[]string{"mode"},
		),
		parseDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tabulad_parse_duration_seconds",
				Help:    "Time spent parsing and projecting CLI output",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
			},
			[]string{"mode"},
		),
	}
}

// ObserveParse records one parse request.
func (m *Metrics) ObserveParse(mode string, items int, elapsed time.Duration) {
	m.parseItemsTotal.WithLabelValues(mode).Add(float64(items))
	m.parseDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// observeRequest records one HTTP request.
func (m *Metrics) observeRequest(method, route, status string, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry returns the registry backing /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
