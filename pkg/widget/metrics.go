package widget

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/slider/pkg/vdom"
)

// MetricsConfig configures widget metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "slider").
	Namespace string

	// Subsystem is the metrics subsystem (default: "widget").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for update duration.
	// Default: buckets from 10µs to ~40ms.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures widget metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "slider",
		Subsystem: "widget",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics records render and update activity. A single Metrics is shared by
// every widget instance of a process; a nil *Metrics records nothing.
type Metrics struct {
	renders        prometheus.Counter
	updates        prometheus.Counter
	patches        *prometheus.CounterVec
	updateDuration prometheus.Histogram
}

// NewMetrics registers the widget metrics:
//   - slider_widget_renders_total
//   - slider_widget_updates_total
//   - slider_widget_patches_total{op}
//   - slider_widget_update_duration_seconds
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		renders: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of full slider renders",
			ConstLabels: config.ConstLabels,
		}),
		updates: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "updates_total",
			Help:        "Total number of slider update passes",
			ConstLabels: config.ConstLabels,
		}),
		patches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "DOM mutations produced by update passes, by operation",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),
		updateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "update_duration_seconds",
			Help:        "Update pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

func (m *Metrics) recordRender() {
	if m != nil {
		m.renders.Inc()
	}
}

func (m *Metrics) recordUpdate(seconds float64, patches []vdom.Patch) {
	if m == nil {
		return
	}
	m.updates.Inc()
	m.updateDuration.Observe(seconds)
	for _, p := range patches {
		m.patches.WithLabelValues(p.Op.String()).Inc()
	}
}
