// Package metrics defines and registers all custom Prometheus metrics for the
// recruiting identity service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recruiting"

// --- Registration metrics ---

// RegistrationsTotal counts successfully created accounts.
// Label:
//   - role: the registered role ("HR" or "CANDIDATE")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// RegistrationFailuresTotal counts rejected registration attempts.
// Label:
//   - reason: "validation", "forbidden_role", "email_taken", "username_taken", "internal"
var RegistrationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_failures_total",
		Help:      "Total number of rejected registration attempts, by reason.",
	},
	[]string{"reason"},
)

// --- Session metrics ---

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure" (failures are deliberately not broken
//     down further; the split would mirror the enumeration side channel the
//     issuer avoids externally)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordHashDuration measures bcrypt hashing time during registration, the
// one deliberately CPU-bound step in the subsystem.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing during registration.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
)

// --- Authorization metrics ---

// AuthzDecisionsTotal counts route-scope gate decisions.
// Label:
//   - decision: "allow", "deny_unauthenticated", "deny_forbidden"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization gate decisions, by outcome.",
	},
	[]string{"decision"},
)

// --- Audit metrics ---

// AuditQueueDepth tracks the number of audit events waiting in each worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit events dropped because a worker channel was
// full. Audit persistence is best effort and must never block a request.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit events dropped due to a full worker queue.",
	},
)
