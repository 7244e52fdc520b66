package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	aggregationsTotal   *prometheus.CounterVec
	aggregationDuration prometheus.Histogram
	recordsSkipped      prometheus.Counter
	storeBreakerState   *prometheus.GaugeVec
	budgetUpdatesTotal  *prometheus.CounterVec
	budgetStatusTotal   *prometheus.CounterVec
}

// NewPrometheusMetrics registers collectors on registerer; nil uses the default registry
func NewPrometheusMetrics(registerer prometheus.Registerer) MetricsRecorderInterface {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		aggregationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_aggregations_total",
				Help: "Total number of expense aggregations by outcome",
			},
			[]string{"status"},
		),
		aggregationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "expense_aggregation_duration_milliseconds",
				Help:    "Expense aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
		),
		recordsSkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "expense_records_skipped_total",
				Help: "Total number of records excluded from aggregation as invalid",
			},
		),
		storeBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "record_store_breaker_state",
				Help: "Record store breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"store"},
		),
		budgetUpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_updates_total",
				Help: "Total number of budget ceiling updates",
			},
			[]string{"operation"},
		),
		budgetStatusTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_status_total",
				Help: "Total number of budget evaluations by resulting status",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "expense.aggregation":
		if status := tags["status"]; status != "" {
			m.aggregationsTotal.WithLabelValues(status).Inc()
		}
	case "budget.updated":
		if operation := tags["operation"]; operation != "" {
			m.budgetUpdatesTotal.WithLabelValues(operation).Inc()
		}
	case "budget.evaluated":
		if status := tags["status"]; status != "" {
			m.budgetStatusTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "expense.aggregation":
		m.aggregationDuration.Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "store.breaker.state":
		m.storeBreakerState.WithLabelValues(tags["store"]).Set(value)
	}
}

// AddCounter adds value to a counter; negative values are ignored
func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	if value < 0 {
		return
	}
	switch name {
	case "expense.records.skipped":
		m.recordsSkipped.Add(value)
	}
}
