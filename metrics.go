package tgdango

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the updates passing through the application.
type Metrics struct {
	updates  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them.
//
// Args:
//   - reg: The registerer, e.g. [prometheus.DefaultRegisterer].
//
// Returns:
//   - *Metrics: The metrics, to be passed to [WithMetrics].
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tgdango",
			Name:      "updates_total",
			Help:      "Updates handled, by update type.",
		}, []string{"update_type"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tgdango",
			Name:      "update_failures_total",
			Help:      "Updates whose handling returned an error, by update type.",
		}, []string{"update_type"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tgdango",
			Name:      "update_duration_seconds",
			Help:      "Time spent handling an update, by update type.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"update_type"}),
	}
	reg.MustRegister(m.updates, m.failures, m.duration)

	return m
}

// Middleware observes the rest of the chain.
func (m *Metrics) Middleware() Middleware {
	return func(c *Context, next NextFunc) error {
		updateType := c.UpdateType.String()
		start := time.Now()

		err := next()

		m.updates.WithLabelValues(updateType).Inc()
		m.duration.WithLabelValues(updateType).Observe(time.Since(start).Seconds())
		if err != nil {
			m.failures.WithLabelValues(updateType).Inc()
		}

		return err
	}
}
