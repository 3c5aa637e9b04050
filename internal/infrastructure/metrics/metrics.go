// Package metrics holds the Prometheus collectors of the aggregation engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Delta modes and transaction results used as label values.
const (
	ModeAdded     = "added"
	ModeRemoved   = "removed"
	ModePersisted = "persisted"
	ModeRecompute = "recompute"

	ResultApplied  = "applied"
	ResultSkipped  = "skipped"
	ResultFailed   = "failed"
	ResultConflict = "conflict"
)

var (
	// RollupTransactions counts rollup writes by mode and result.
	RollupTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "painel_rollup_transactions_total",
		Help: "State rollup writes by mode and result",
	}, []string{"mode", "result"})

	// RollupRetries counts optimistic-concurrency retries of rollup transactions.
	RollupRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "painel_rollup_transaction_retries_total",
		Help: "Rollup transactions retried after a concurrent write",
	})

	RecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "painel_rollup_recompute_duration_seconds",
		Help:    "Full recompute duration per state in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	})

	RecomputeProjects = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "painel_rollup_recompute_projects",
		Help:    "Projects folded per state recompute",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500},
	})

	// DoubleCountCorrections counts projects subtracted from the all-states view
	// because they appear in more than one state rollup.
	DoubleCountCorrections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "painel_dashboard_double_count_corrections_total",
		Help: "Projects corrected for cross-state double counting",
	})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "painel_followup_notifications_total",
		Help: "Follow-up reminders handed to the notifier by result",
	}, []string{"result"})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
