// Package metrics defines the Prometheus instrumentation for the quote bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the bot pipeline and HTTP surface.
type Metrics struct {
	// Webhook pipeline metrics
	UpdatesTotal           *prometheus.CounterVec // outcome: handled, no_message, parse_error, internal_error
	CommandsTotal          *prometheus.CounterVec // command kind
	WebhookDurationSeconds prometheus.Histogram

	// Outbound delivery metrics
	OutboundSendsTotal *prometheus.CounterVec // status: sent, failed
}

// New creates a new Metrics instance with all metrics registered.
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		UpdatesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotebot_updates_total",
				Help: "Total number of webhook updates by processing outcome",
			},
			[]string{"outcome"},
		),
		CommandsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotebot_commands_total",
				Help: "Total number of routed commands by kind",
			},
			[]string{"command"},
		),
		WebhookDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "quotebot_webhook_duration_seconds",
				Help:    "Webhook update handling duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
		),
		OutboundSendsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotebot_outbound_sends_total",
				Help: "Total number of outbound message deliveries by status",
			},
			[]string{"status"},
		),
	}
}
