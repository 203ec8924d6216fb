// Package metrics defines and registers all custom Prometheus metrics for the
// attendance API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them at GET /metrics alongside the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "attendance"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of employee accounts created via signup.",
	},
)

// CheckEventsTotal counts ledger transitions by kind and outcome.
// Labels:
//   - kind: "check_in" or "check_out"
//   - result: "ok", "conflict" (double check-in), or "no_active" (check-out while out)
var CheckEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "check_events_total",
		Help:      "Total number of attendance check events, by kind and result.",
	},
	[]string{"kind", "result"},
)

// RequestsSubmittedTotal counts leave request submissions by type.
var RequestsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_submitted_total",
		Help:      "Total number of leave requests submitted, by type.",
	},
	[]string{"type"},
)

// RequestDecisionsTotal counts admin verdicts by resulting status.
// Label:
//   - status: "APPROVED" or "REJECTED"
var RequestDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_decisions_total",
		Help:      "Total number of leave request decisions, by status.",
	},
	[]string{"status"},
)
