package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ProviderErrors   *prometheus.CounterVec
	StoreEvaluations *prometheus.CounterVec
}

// Store evaluation outcomes.
const (
	EvaluationServiceable = "serviceable"
	EvaluationDropped     = "dropped"
	EvaluationFailed      = "failed"
)

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics returns the process-wide metrics set. Collectors register with
// the default registry exactly once.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = newMetrics()
	})
	return metrics
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storelocator_requests_total",
				Help: "Total number of HTTP requests by operation and status",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storelocator_request_duration_seconds",
				Help:    "Request duration in seconds by operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		ProviderErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storelocator_provider_errors_total",
				Help: "Total provider API errors by provider and error kind",
			},
			[]string{"provider", "kind"},
		),
		StoreEvaluations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storelocator_store_evaluations_total",
				Help: "Store shipping evaluations by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// RecordRequest records one HTTP request.
func (m *Metrics) RecordRequest(operation, status string, duration float64) {
	m.RequestsTotal.WithLabelValues(operation, status).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration)
}

// RecordProviderError records a provider failure.
func (m *Metrics) RecordProviderError(provider, kind string) {
	m.ProviderErrors.WithLabelValues(provider, kind).Inc()
}

// RecordEvaluations records store evaluation outcomes for one page.
func (m *Metrics) RecordEvaluations(serviceable, dropped, failed int) {
	m.StoreEvaluations.WithLabelValues(EvaluationServiceable).Add(float64(serviceable))
	m.StoreEvaluations.WithLabelValues(EvaluationDropped).Add(float64(dropped))
	m.StoreEvaluations.WithLabelValues(EvaluationFailed).Add(float64(failed))
}
