package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Relay outcome labels.
const (
	OutcomeReply         = "reply"
	OutcomeBlocked       = "blocked"
	OutcomeUpstreamError = "upstream_error"
	OutcomeBadRequest    = "bad_request"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geminichat_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geminichat_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// Relay metrics
	RelayOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geminichat_relay_outcomes_total",
			Help: "Chat relay results by outcome",
		},
		[]string{"outcome"},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geminichat_generation_duration_seconds",
			Help:    "Latency of upstream Gemini generate calls",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)
)
