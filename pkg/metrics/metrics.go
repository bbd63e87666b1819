package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Outcome labels for CommentOperations.
const (
	OutcomeOK      = "ok"
	OutcomeMissing = "missing"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	CommentOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "comments", Name: "operations_total", Help: "Comment operations by operation and outcome."},
		[]string{"operation", "outcome"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(CommentOperations)
}

// NewRegistry creates a registry with Go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}
