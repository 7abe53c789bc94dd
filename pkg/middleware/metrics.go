package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/vjsx/pkg/vdom"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vjsx").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for build duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vjsx",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics records node construction statistics. It implements vdom.Observer.
//
// Metrics collected:
//   - vjsx_nodes_built_total: Counter of built nodes by kind
//   - vjsx_attributes_classified_total: Counter of attributes by destination
//   - vjsx_build_duration_seconds: Histogram of Build duration (via Wrap)
type Metrics struct {
	nodesBuilt      *prometheus.CounterVec
	attrsClassified *prometheus.CounterVec
	buildDuration   prometheus.Histogram
}

var _ vdom.Observer = (*Metrics)(nil)

// NewMetrics registers the metrics with the configured registry. Registering
// twice with the same registry panics, so create one Metrics per registry.
//
// Example:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("myapp"))
//	b := m.Wrap(vdom.NewBuilder(vdom.WithObserver(m)))
//
//	http.Handle("/metrics", promhttp.Handler())
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		nodesBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_built_total",
			Help:        "Total number of render nodes built",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		attrsClassified: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attributes_classified_total",
			Help:        "Total number of attributes classified, by destination",
			ConstLabels: config.ConstLabels,
		}, []string{"destination"}),

		buildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "build_duration_seconds",
			Help:        "Node build duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// ObserveAttr implements vdom.Observer.
func (m *Metrics) ObserveAttr(_ string, dest vdom.Destination) {
	m.attrsClassified.WithLabelValues(dest.String()).Inc()
}

// ObserveNode implements vdom.Observer.
func (m *Metrics) ObserveNode(node *vdom.RenderNode) {
	m.nodesBuilt.WithLabelValues(node.Kind().String()).Inc()
}

// Wrap returns a NodeBuilder that records the duration of every Build.
func (m *Metrics) Wrap(next vdom.NodeBuilder) vdom.NodeBuilder {
	return &timedBuilder{next: next, m: m}
}

type timedBuilder struct {
	next vdom.NodeBuilder
	m    *Metrics
}

func (t *timedBuilder) Build(tag any, cfg *vdom.Config) *vdom.RenderNode {
	start := time.Now()
	node := t.next.Build(tag, cfg)
	t.m.buildDuration.Observe(time.Since(start).Seconds())
	return node
}
