package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cheappt",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Token counters
	TokensPromptTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cheappt",
			Subsystem: "chat",
			Name:      "tokens_prompt_total",
			Help:      "Total prompt tokens consumed",
		},
		[]string{"model"},
	)

	TokensCompletionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cheappt",
			Subsystem: "chat",
			Name:      "tokens_completion_total",
			Help:      "Total completion tokens generated",
		},
		[]string{"model"},
	)

	// Upstream errors
	UpstreamErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cheappt",
			Subsystem: "chat",
			Name:      "upstream_errors_total",
			Help:      "Total upstream API call failures",
		},
		[]string{"operation"},
	)

	// Conversations
	ConversationsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cheappt",
			Subsystem: "chat",
			Name:      "conversations_created_total",
			Help:      "Total conversations created",
		},
	)

	// Generated images
	ImagesGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cheappt",
			Subsystem: "chat",
			Name:      "images_generated_total",
			Help:      "Total images generated",
		},
	)

	// Auth requests
	AuthRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cheappt",
			Subsystem: "chat",
			Name:      "auth_requests_total",
			Help:      "Total authentication requests",
		},
		[]string{"auth_type", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cheappt",
			Subsystem: "chat",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Upstream completion duration
	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cheappt",
			Subsystem: "chat",
			Name:      "completion_duration_seconds",
			Help:      "Upstream completion call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model"},
	)
)

// RecordRequest records an HTTP request with its duration
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordTokens records token usage for a completion request
func RecordTokens(model string, promptTokens, completionTokens int) {
	TokensPromptTotal.WithLabelValues(model).Add(float64(promptTokens))
	TokensCompletionTotal.WithLabelValues(model).Add(float64(completionTokens))
}

// RecordCompletionDuration records the duration of an upstream completion call
func RecordCompletionDuration(model string, durationSec float64) {
	CompletionDuration.WithLabelValues(model).Observe(durationSec)
}

// RecordUpstreamError records an upstream API failure
func RecordUpstreamError(operation string) {
	UpstreamErrorsTotal.WithLabelValues(operation).Inc()
}

// RecordAuthRequest records a signup or login attempt
func RecordAuthRequest(authType, status string) {
	AuthRequestsTotal.WithLabelValues(authType, status).Inc()
}
