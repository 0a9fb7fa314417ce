package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/partyledger/internal/domain"
)

// Metrics holds all Prometheus metrics of the statement engine.
type Metrics struct {
	// Statement metrics
	StatementsBuilt   *prometheus.CounterVec
	StatementDuration *prometheus.HistogramVec
	StatementEntries  prometheus.Histogram

	// Source metrics
	SourceFetchDuration *prometheus.HistogramVec
	SourceFailures      *prometheus.CounterVec
	RejectedRecords     *prometheus.CounterVec
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		StatementsBuilt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_statements_total",
				Help: "Total statement builds by party kind and outcome",
			},
			[]string{"party_kind", "outcome"},
		),
		StatementDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "partyledger_statement_duration_seconds",
				Help:    "Duration of statement builds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"party_kind"},
		),
		StatementEntries: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "partyledger_statement_entries",
			Help:    "Number of entries per statement",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000},
		}),

		SourceFetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "partyledger_source_fetch_duration_seconds",
				Help:    "Duration of source adapter fetches",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		SourceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_source_failures_total",
				Help: "Total source adapter failures",
			},
			[]string{"source"},
		),
		RejectedRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partyledger_rejected_records_total",
				Help: "Total raw records rejected during normalization",
			},
			[]string{"source", "reason"},
		),
	}
}

// ObserveSourceFetch implements usecase.StatementObserver.
func (m *Metrics) ObserveSourceFetch(source domain.SourceType, duration time.Duration, err error) {
	m.SourceFetchDuration.WithLabelValues(string(source)).Observe(duration.Seconds())
	if err != nil {
		m.SourceFailures.WithLabelValues(string(source)).Inc()
	}
}

// ObserveRejectedRecord implements usecase.StatementObserver.
func (m *Metrics) ObserveRejectedRecord(source domain.SourceType, code string) {
	m.RejectedRecords.WithLabelValues(string(source), code).Inc()
}

// ObserveStatement implements usecase.StatementObserver.
func (m *Metrics) ObserveStatement(kind domain.PartyKind, outcome string, duration time.Duration, entries int) {
	m.StatementsBuilt.WithLabelValues(string(kind), outcome).Inc()
	m.StatementDuration.WithLabelValues(string(kind)).Observe(duration.Seconds())
	if outcome == "complete" || outcome == "partial" {
		m.StatementEntries.Observe(float64(entries))
	}
}
