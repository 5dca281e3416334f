// Package metrics defines and registers all custom Prometheus metrics for
// the work-manager API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via
// promauto and the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workmanager"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ReportsGeneratedTotal counts payroll report computations served over HTTP.
var ReportsGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of payroll reports generated.",
	},
)

// ExportsTotal counts CSV payroll exports.
var ExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "csv_exports_total",
		Help:      "Total number of CSV payroll exports.",
	},
)

// StoreSavesTotal counts successful whole-document writes to the store.
// Label:
//   - backend: "file", "mongo" or "redis"
var StoreSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_saves_total",
		Help:      "Total number of successful state document saves, by backend.",
	},
	[]string{"backend"},
)

// ApprovalActionsTotal counts approval ledger mutations.
// Label:
//   - action: "approve" or "revoke"
var ApprovalActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "approval_actions_total",
		Help:      "Total number of month approval mutations, by action.",
	},
	[]string{"action"},
)
