// Package metrics defines and registers the custom Prometheus metrics of the
// tracking API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracking"

// ── Lookup metrics ────────────────────────────────────────────────────────────

// LookupsTotal counts tracking lookups by outcome.
// Label:
//   - result: "ok", "invalid_format", "not_found", "unauthorized", "rejected_format",
//     "carrier_unavailable", "decode_failed"
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of tracking lookups, by result.",
	},
	[]string{"result"},
)

// UnknownEventCodesTotal counts event codes outside the known vocabulary that
// were skipped in lenient decoding mode.
var UnknownEventCodesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_event_codes_total",
		Help:      "Total number of carrier events skipped because of an unknown code.",
	},
	[]string{"code"},
)

// NewEventsTotal counts events logged for the first time.
var NewEventsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "new_events_total",
		Help:      "Total number of carrier events seen for the first time.",
	},
)

// ── Carrier metrics ───────────────────────────────────────────────────────────

// CarrierRequestDuration measures round trips to the carrier API.
// Label:
//   - code: HTTP status code returned by the carrier, or "error" on transport failure
var CarrierRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "carrier_request_duration_seconds",
		Help:      "Duration of carrier tracking requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"code"},
)

// ── Watch metrics ─────────────────────────────────────────────────────────────

// WatchesCreatedTotal counts newly created watches.
var WatchesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "watches_created_total",
		Help:      "Total number of watches created.",
	},
)

// RefreshesTotal counts watch refreshes.
// Label:
//   - result: "ok", "error", or "completed" when the refresh deactivated the watch
var RefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refreshes_total",
		Help:      "Total number of watch refreshes, by result.",
	},
	[]string{"result"},
)

// RefreshQueueDepth tracks pending refreshes in each dispatcher worker channel.
var RefreshQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "refresh_queue_depth",
		Help:      "Current number of refreshes pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
