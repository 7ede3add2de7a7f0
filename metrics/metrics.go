// Package metrics exports search activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdrpinto/search"
)

// Collector implements search.Observer by recording Prometheus metrics.
// It is safe for concurrent use.
type Collector struct {
	searches *prometheus.CounterVec
	expanded *prometheus.CounterVec
	depth    *prometheus.HistogramVec
	duration *prometheus.HistogramVec
	pathCost *prometheus.HistogramVec
	inFlight *prometheus.GaugeVec
	failures *prometheus.CounterVec
}

// New creates a Collector and registers its metrics on reg.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of finished searches",
			},
			[]string{"strategy", "outcome"},
		),
		expanded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "expanded_states_total",
				Help:      "Total number of expanded states",
			},
			[]string{"strategy"},
		),
		depth: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "expansion_depth",
				Help:      "Depth of expanded nodes",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"strategy"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Duration of searches",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),
		pathCost: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_cost",
				Help:      "Cost of solution paths",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
			},
			[]string{"strategy"},
		),
		inFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "searches_in_flight",
				Help:      "Number of searches currently running",
			},
			[]string{"strategy"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_errors_total",
				Help:      "Total number of searches aborted by an error",
			},
			[]string{"strategy"},
		),
	}

	for _, collector := range []prometheus.Collector{
		c.searches, c.expanded, c.depth, c.duration, c.pathCost, c.inFlight, c.failures,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SearchStarted implements search.Observer.
func (c *Collector) SearchStarted(strategy search.Strategy) {
	c.inFlight.WithLabelValues(strategy.String()).Inc()
}

// NodeExpanded implements search.Observer.
func (c *Collector) NodeExpanded(strategy search.Strategy, depth int, _ float64) {
	label := strategy.String()
	c.expanded.WithLabelValues(label).Inc()
	c.depth.WithLabelValues(label).Observe(float64(depth))
}

// SearchFinished implements search.Observer.
func (c *Collector) SearchFinished(strategy search.Strategy, stats search.Stats, err error) {
	label := strategy.String()
	c.inFlight.WithLabelValues(label).Dec()
	c.duration.WithLabelValues(label).Observe(stats.Duration.Seconds())

	switch {
	case err != nil:
		c.failures.WithLabelValues(label).Inc()
		c.searches.WithLabelValues(label, "error").Inc()
	case stats.Found:
		c.pathCost.WithLabelValues(label).Observe(stats.Cost)
		c.searches.WithLabelValues(label, "found").Inc()
	default:
		c.searches.WithLabelValues(label, "not_found").Inc()
	}
}

var _ search.Observer = (*Collector)(nil)
