package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the HTTP API.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec   // labels: route, method, status
	RequestDuration *prometheus.HistogramVec // labels: route

	StationsLoaded prometheus.Gauge
}

// NewMetrics creates and registers all server metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ecadtemp",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method, and status code.",
		}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ecadtemp",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by route pattern.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"route"}),
		StationsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ecadtemp",
			Name:      "stations_loaded",
			Help:      "Number of stations read from the catalog at startup.",
		}),
	}

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.StationsLoaded,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RequestsTotal:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "ecadtemp", Name: "http_requests_total"}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "ecadtemp", Name: "http_request_duration_seconds"}, []string{"route"}),
		StationsLoaded:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "ecadtemp", Name: "stations_loaded"}),
	}
}
