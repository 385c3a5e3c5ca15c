// Package metrics defines and registers all custom Prometheus metrics of the
// DPD request compiler. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dpd"

// ── Compiler metrics ──────────────────────────────────────────────────────────

// DocumentsCompiledTotal counts documents that passed validation and were built.
// Label:
//   - kind: "shipment", "label", "postal_code"
var DocumentsCompiledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_compiled_total",
		Help:      "Total number of request documents compiled, by kind.",
	},
	[]string{"kind"},
)

// ValidationFailuresTotal counts local input rejections.
// Labels:
//   - kind: document kind being compiled
//   - reason: error kind (e.g. "unknown_field", "invalid_enum_value")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of compilations rejected by local validation.",
	},
	[]string{"kind", "reason"},
)

// ── Remote call metrics ───────────────────────────────────────────────────────

// RemoteCallsTotal counts remote operations.
// Labels:
//   - operation: carrier operation name (e.g. "generatePackagesNumbersV4")
//   - result: "ok", "fault", "error"
var RemoteCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_calls_total",
		Help:      "Total number of remote carrier operations, by result.",
	},
	[]string{"operation", "result"},
)

// RemoteCallDuration measures remote operation latency.
var RemoteCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_call_duration_seconds",
		Help:      "Duration of remote carrier operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// CircuitBreakerState reports the invoker breaker state (0=closed, 1=half-open, 2=open).
var CircuitBreakerState = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "circuit_breaker_state",
		Help:      "Current state of the remote invoker circuit breaker.",
	},
	[]string{"name"},
)

// ── Tracking event metrics ────────────────────────────────────────────────────

// EventsProcessedTotal counts tracking events recorded successfully.
// Label:
//   - code: carrier business code of the event
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of tracking events successfully recorded.",
	},
	[]string{"code"},
)

// EventsErrorsTotal counts events that failed processing.
// Label:
//   - reason: "insert_failed", "confirm_failed", "fetch_failed"
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of tracking event failures.",
	},
	[]string{"reason"},
)

// EventsDedupTotal counts confirmation dedup decisions ("hit" or "miss").
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dedup_total",
		Help:      "Total number of confirmation dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// EventsQueueDepth tracks the number of events waiting in each worker channel.
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
