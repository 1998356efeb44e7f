// Package metrics defines and registers all custom Prometheus metrics for
// the shop API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shop"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "administrator" or "user"
//   - result: "success", "not_found", "bad_password", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by actor kind and result.",
	},
	[]string{"kind", "result"},
)

// AuthRejectionsTotal counts requests the admission gate rejected.
// Label:
//   - reason: snake_case form of the rejection reason (e.g. "token_not_found",
//     "ip_mismatch", "token_expired")
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the token admission gate.",
	},
	[]string{"reason"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts orders made from carts.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// OrderEventsProcessedTotal counts order status events that completed processing.
// Labels:
//   - status: the new order status applied by the event (e.g. "accepted")
//   - source: the event source reported by the sender (e.g. "warehouse")
var OrderEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_events_processed_total",
		Help:      "Total number of order status events successfully processed.",
	},
	[]string{"status", "source"},
)

// OrderEventsErrorsTotal counts order status events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "invalid_transition",
//     "order_not_found", "update_failed")
var OrderEventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_events_errors_total",
		Help:      "Total number of order status events that failed processing.",
	},
	[]string{"reason"},
)

// OrderEventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var OrderEventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// OrderEventsQueueDepth tracks the current number of events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var OrderEventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "order_events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// OrderEventProcessingDuration measures how long a single event takes to
// process end-to-end.
// Label:
//   - result: "ok" or "error"
var OrderEventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_event_processing_duration_seconds",
		Help:      "Duration of order event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
