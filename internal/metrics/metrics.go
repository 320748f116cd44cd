// Package metrics provides Prometheus instrumentation for the trust engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline collectors. It satisfies the service layer's
// metrics hooks and serves the scrape endpoint.
type Metrics struct {
	registry *prometheus.Registry

	decisionsTotal   *prometheus.CounterVec
	checkDuration    prometheus.Histogram
	analyzerTimeouts *prometheus.CounterVec
	auditRetries     prometheus.Counter
	auditFailures    prometheus.Counter
}

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "trust_engine",
				Name:      "decisions_total",
				Help:      "Total fraud-check decisions by enforcement action.",
			},
			[]string{"action"},
		),
		checkDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "trust_engine",
				Name:      "check_duration_seconds",
				Help:      "Fraud-check pipeline latency in seconds.",
				Buckets:   []float64{.005, .01, .025, .05, .1, .15, .25, .4, .6, 1},
			},
		),
		analyzerTimeouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "trust_engine",
				Name:      "analyzer_timeouts_total",
				Help:      "Analyzer executions degraded by timeout, by factor.",
			},
			[]string{"factor"},
		),
		auditRetries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "trust_engine",
				Name:      "audit_write_retries_total",
				Help:      "Audit write attempts that needed a retry.",
			},
		),
		auditFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "trust_engine",
				Name:      "audit_write_failures_total",
				Help:      "Audit jobs dropped or abandoned after exhausted retries.",
			},
		),
	}
	m.registry.MustRegister(
		m.decisionsTotal,
		m.checkDuration,
		m.analyzerTimeouts,
		m.auditRetries,
		m.auditFailures,
	)
	return m
}

// ObserveDecision records one finished check.
func (m *Metrics) ObserveDecision(action string, duration time.Duration) {
	m.decisionsTotal.WithLabelValues(action).Inc()
	m.checkDuration.Observe(duration.Seconds())
}

// AnalyzerTimeout records one timed-out analyzer.
func (m *Metrics) AnalyzerTimeout(factor string) {
	m.analyzerTimeouts.WithLabelValues(factor).Inc()
}

// AuditRetry records one retried audit write.
func (m *Metrics) AuditRetry() { m.auditRetries.Inc() }

// AuditFailure records one dropped or abandoned audit job.
func (m *Metrics) AuditFailure() { m.auditFailures.Inc() }

// Handler serves the scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
