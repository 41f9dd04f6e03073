package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Turn outcomes.
const (
	OutcomeCompleted     = "completed"
	OutcomeCanned        = "canned"
	OutcomeUpstreamError = "upstream_error"
	OutcomeStorageError  = "storage_error"
)

// Metrics holds the Prometheus collectors of the orchestrator.
//
//   - chat_turns_total{outcome}
//   - chat_completion_duration_seconds{model}
type Metrics struct {
	TurnsTotal         *prometheus.CounterVec
	CompletionDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		TurnsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_turns_total",
				Help: "Total number of chat turns by outcome",
			},
			[]string{"outcome"},
		),
		CompletionDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chat_completion_duration_seconds",
				Help:    "Latency of completion endpoint calls in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"model"},
		),
	}
}
