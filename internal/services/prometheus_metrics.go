package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsGenerated *prometheus.CounterVec
	generationDuration    prometheus.Histogram
	generationFailures    *prometheus.CounterVec
	rowsWritten           prometheus.Counter
	rowsPersisted         prometheus.Counter
	rowsStaged            prometheus.Counter
	amountGenerated       *prometheus.CounterVec
}

// NewPrometheusMetrics registers the generation metrics on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seeder_transactions_generated_total",
				Help: "Total number of synthetic transactions generated",
			},
			[]string{"scenario", "category"},
		),
		generationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seeder_generation_duration_milliseconds",
				Help:    "Batch generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		generationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seeder_generation_failures_total",
				Help: "Total number of failed generation runs",
			},
			[]string{"reason"},
		),
		rowsWritten: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "seeder_csv_rows_written_total",
				Help: "Total number of data rows written to CSV output",
			},
		),
		rowsPersisted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "seeder_rows_persisted_total",
				Help: "Total number of rows inserted into the database",
			},
		),
		rowsStaged: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "seeder_rows_staged_total",
				Help: "Total number of rows staged for review",
			},
		),
		amountGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seeder_amount_generated_total",
				Help: "Absolute generated amount by direction",
			},
			[]string{"direction"},
		),
	}
}

func (m *PrometheusMetrics) RecordTransactionGenerated(scenario, category string) {
	m.transactionsGenerated.WithLabelValues(scenario, category).Inc()
}

func (m *PrometheusMetrics) RecordGenerationDuration(duration time.Duration) {
	m.generationDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordGenerationFailure(reason string) {
	m.generationFailures.WithLabelValues(reason).Inc()
}

func (m *PrometheusMetrics) RecordRowsWritten(rows int) {
	m.rowsWritten.Add(float64(rows))
}

func (m *PrometheusMetrics) RecordRowsPersisted(rows int) {
	m.rowsPersisted.Add(float64(rows))
}

func (m *PrometheusMetrics) RecordRowsStaged(rows int) {
	m.rowsStaged.Add(float64(rows))
}

func (m *PrometheusMetrics) RecordAmount(direction string, amount float64) {
	m.amountGenerated.WithLabelValues(direction).Add(amount)
}

// NoOpMetrics discards every observation
type NoOpMetrics struct{}

func NewNoOpMetrics() MetricsRecorderInterface {
	return &NoOpMetrics{}
}

func (m *NoOpMetrics) RecordTransactionGenerated(scenario, category string) {}
func (m *NoOpMetrics) RecordGenerationDuration(duration time.Duration)     {}
func (m *NoOpMetrics) RecordGenerationFailure(reason string)               {}
func (m *NoOpMetrics) RecordRowsWritten(rows int)                          {}
func (m *NoOpMetrics) RecordRowsPersisted(rows int)                        {}
func (m *NoOpMetrics) RecordRowsStaged(rows int)                           {}
func (m *NoOpMetrics) RecordAmount(direction string, amount float64)       {}
