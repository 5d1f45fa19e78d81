// Package metrics defines and registers all custom Prometheus metrics for the
// sharing API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics use promauto, so importing the package registers them with the
// default Prometheus registry before the HTTP server starts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sharing"

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts bookings accepted into the WAITING state.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingsConfirmedTotal counts owner decisions on waiting bookings.
// Label:
//   - decision: "approved" or "rejected"
var BookingsConfirmedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_confirmed_total",
		Help:      "Total number of booking confirmations, by decision.",
	},
	[]string{"decision"},
)

// BookingListQueriesTotal counts segmented booking listings.
// Labels:
//   - side: "booker" or "owner"
//   - state: the requested state filter (e.g. "ALL", "CURRENT")
var BookingListQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_list_queries_total",
		Help:      "Total number of booking list queries, by side and state filter.",
	},
	[]string{"side", "state"},
)

// ── Notice metrics ────────────────────────────────────────────────────────────

// NoticesDeliveredTotal counts booking lifecycle notices handed to the sink.
// Label:
//   - kind: the notice kind (e.g. "booking_created", "booking_approved")
var NoticesDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notices_delivered_total",
		Help:      "Total number of booking notices delivered to the sink.",
	},
	[]string{"kind"},
)

// NoticesDroppedTotal counts notices discarded because the responsible worker
// channel was full.
var NoticesDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notices_dropped_total",
		Help:      "Total number of booking notices dropped due to a full worker channel.",
	},
)

// NoticesErrorsTotal counts notices the sink failed to deliver.
var NoticesErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notices_errors_total",
		Help:      "Total number of booking notices that failed delivery.",
	},
)

// NoticesQueueDepth tracks the number of notices waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NoticesQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notices_queue_depth",
		Help:      "Current number of notices pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// UserCacheTotal counts user cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var UserCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_cache_total",
		Help:      "Total number of user cache lookups, labelled by result.",
	},
	[]string{"result"},
)
