package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for ActionsTotal.
const (
	OutcomeOK           = "ok"
	OutcomeFallback     = "fallback"
	OutcomeShortCircuit = "short_circuit"
	OutcomeError        = "error"
)

var (
	ActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "montblanc_skill_actions_total",
		Help: "Resolved skill actions by outcome",
	}, []string{"action", "outcome"})

	CompletionLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "montblanc_completion_latency_seconds",
		Help:    "Latency of completion service calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})

	BreakerTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "montblanc_provider_breaker_transitions_total",
		Help: "Circuit breaker state transitions per completion provider",
	}, []string{"provider", "to"})

	TransportErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "montblanc_transport_errors_total",
		Help: "Requests rejected before reaching the skill core",
	}, []string{"transport"})
)

// ObserveAction counts one handled action.
func ObserveAction(action, outcome string) {
	ActionsTotal.WithLabelValues(action, outcome).Inc()
}

// ObserveCompletion records the duration of one completion call started at start.
func ObserveCompletion(action string, start time.Time) {
	CompletionLatency.WithLabelValues(action).Observe(time.Since(start).Seconds())
}

// ObserveBreakerTransition matches llmprovider.BootstrapOptions.OnBreakerStateChange.
func ObserveBreakerTransition(provider, from, to string) {
	BreakerTransitionsTotal.WithLabelValues(provider, to).Inc()
}
