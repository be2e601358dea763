// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsProcessed tracks inbound events by channel and outcome.
	EventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_events_processed_total",
			Help: "Inbound events processed",
		},
		[]string{"channel", "outcome"},
	)

	// ConversationsStarted tracks new conversations created.
	ConversationsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_conversations_started_total",
			Help: "Conversations created",
		},
		[]string{"channel"},
	)

	// QuestionsGenerated tracks grammar-generated questions by topic.
	QuestionsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_questions_generated_total",
			Help: "Questions generated",
		},
		[]string{"topic"},
	)

	// GrammarRetries tracks how many re-expansions were needed before an
	// unused question was found.
	GrammarRetries = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bot_grammar_retries",
			Help:    "Re-expansions before an unused question was found",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50},
		},
	)

	// WildcardFallbacks tracks expansions forced to the wildcard symbol.
	WildcardFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_wildcard_fallbacks_total",
			Help: "Expansion points exhausted and forced to the wildcard",
		},
	)

	// ExternalCallFailures tracks failed calls to external services.
	ExternalCallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_external_call_failures_total",
			Help: "Failed external service calls",
		},
		[]string{"service"},
	)

	// BatchDuration tracks poll batch processing duration.
	BatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bot_batch_duration_seconds",
			Help:    "Poll batch processing duration",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"channel"},
	)

	// RequestDuration tracks admin HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_request_duration_seconds",
			Help:    "Admin HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total admin HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_requests_total",
			Help: "Total admin HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// RecordRequest records metrics for an admin HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordEvent records the outcome of one processed inbound event.
func RecordEvent(channel, outcome string) {
	EventsProcessed.WithLabelValues(channel, outcome).Inc()
}
