package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the scheduler
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Database Metrics
	DBQueryDuration *prometheus.HistogramVec

	// Business Metrics
	FlightWritesTotal      *prometheus.CounterVec
	FlightRejectionsTotal  *prometheus.CounterVec
	SearchRequestsTotal    *prometheus.CounterVec
	RateLimitedTotal       prometheus.Counter
	DepartureReportsServed prometheus.Counter
}

// NewMetricsRegistry registers every metric on reg. Pass
// prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdesk_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdesk_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightdesk_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		// Database Metrics
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdesk_db_query_duration_seconds",
				Help:    "Report query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Business Metrics
		FlightWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdesk_flight_writes_total",
				Help: "Successful flight writes by operation",
			},
			[]string{"operation"},
		),
		FlightRejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdesk_flight_rejections_total",
				Help: "Flight writes rejected by validation, by reason",
			},
			[]string{"reason"},
		),
		SearchRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdesk_search_requests_total",
				Help: "Flight searches by criterion",
			},
			[]string{"kind"},
		),
		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdesk_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
		DepartureReportsServed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdesk_departure_reports_total",
				Help: "Departure aggregation reports computed",
			},
		),
	}
}

// The helpers below accept a nil registry so services can run without metrics.

func (m *MetricsRegistry) FlightWritten(operation string) {
	if m == nil {
		return
	}
	m.FlightWritesTotal.WithLabelValues(operation).Inc()
}

func (m *MetricsRegistry) FlightRejected(reason string) {
	if m == nil {
		return
	}
	m.FlightRejectionsTotal.WithLabelValues(reason).Inc()
}

func (m *MetricsRegistry) SearchServed(kind string) {
	if m == nil {
		return
	}
	m.SearchRequestsTotal.WithLabelValues(kind).Inc()
}

func (m *MetricsRegistry) RateLimited() {
	if m == nil {
		return
	}
	m.RateLimitedTotal.Inc()
}

func (m *MetricsRegistry) DepartureReport() {
	if m == nil {
		return
	}
	m.DepartureReportsServed.Inc()
}

// ObserveQuery records a report query duration in seconds
func (m *MetricsRegistry) ObserveQuery(queryType string, seconds float64) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(queryType).Observe(seconds)
}
