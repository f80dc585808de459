package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for provisioning operations.
type Metrics struct {
	// OperationsTotal counts completed runs by kind and result
	// (completed vs rejected).
	OperationsTotal *prometheus.CounterVec

	// StepFailuresTotal counts failed steps by step name.
	StepFailuresTotal *prometheus.CounterVec

	// OperationDuration observes end-to-end run durations by kind.
	OperationDuration *prometheus.HistogramVec
}

// New creates and registers the provisioning metrics. sync.Once keeps
// repeated construction from panicking on duplicate registration.
//
// Metrics:
//   - saleshub_operations_total{kind, result}
//   - saleshub_step_failures_total{step}
//   - saleshub_operation_duration_seconds{kind}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			OperationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "saleshub_operations_total",
					Help: "Total number of onboarding/offboarding runs",
				},
				[]string{"kind", "result"}, // result: completed, rejected
			),
			StepFailuresTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "saleshub_step_failures_total",
					Help: "Total number of failed provisioning steps",
				},
				[]string{"step"},
			),
			OperationDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "saleshub_operation_duration_seconds",
					Help:    "End-to-end duration of operation runs",
					Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
				},
				[]string{"kind"},
			),
		}
	})
	return globalMetrics
}
