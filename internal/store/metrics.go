package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-operation counters and durations for the entity store.
type Metrics struct {
	ops       *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewMetrics constructs and registers the store collectors on the given
// registerer. Pass prometheus.DefaultRegisterer for process-wide metrics or a
// private registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fabcore",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Entity store operations by collection, operation and status.",
		}, []string{"collection", "operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fabcore",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Entity store operation latency by collection and operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection", "operation"}),
	}
	reg.MustRegister(m.ops, m.durations)
	return m
}

func (m *Metrics) observe(op, collection string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.ops.WithLabelValues(collection, op, status).Inc()
	m.durations.WithLabelValues(collection, op).Observe(d.Seconds())
}
