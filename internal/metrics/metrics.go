package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// LedgerEntriesCreated counts entries actually written, per category.
	// Idempotent replays that write nothing are not counted.
	LedgerEntriesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_entries_created_total",
			Help: "Ledger entries written, by category",
		},
		[]string{"category"},
	)

	SyncFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_failures_total",
			Help: "Derived ledger or journal writes that failed, by source",
		},
		[]string{"source"},
	)

	ReconciliationReports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconciliation_reports_total",
			Help: "Reports reconciled, by report type and outcome",
		},
		[]string{"type", "status"},
	)

	AlertsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alerts_generated_total",
			Help: "Alerts created by the evaluator, by type",
		},
		[]string{"type"},
	)
)
