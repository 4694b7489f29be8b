// Package metrics defines and registers all custom Prometheus metrics for the
// bookstore API. It is the single source of truth for metric names, labels,
// and help strings. Metrics are registered with the default registry at init
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookstore"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts created accounts.
// Label:
//   - role: "Admin" or "User"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, labelled by role.",
	},
	[]string{"role"},
)

// ── Inventory metrics ─────────────────────────────────────────────────────────

// BooksCreatedTotal counts newly created books.
var BooksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_created_total",
		Help:      "Total number of books created.",
	},
)

// StockUpdatesTotal counts absolute stock replacements.
var StockUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_updates_total",
		Help:      "Total number of stock quantity updates.",
	},
)

// RecommendationChangesTotal counts recommendation flag changes.
// Label:
//   - recommended: "true" or "false" (the new value)
var RecommendationChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendation_changes_total",
		Help:      "Total number of recommendation flag changes, labelled by new value.",
	},
	[]string{"recommended"},
)

// FeedbackAddedTotal counts appended feedback entries.
var FeedbackAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_added_total",
		Help:      "Total number of feedback entries appended to books.",
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditWriteFailuresTotal counts audit entries that could not be persisted.
var AuditWriteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit entries that failed to persist.",
	},
)

// AuditQueueDepth tracks the current number of entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
