package dataset

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the cache's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "eastui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "dataset").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the cache metrics.
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

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics holds the cache's Prometheus collectors.
type Metrics struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	fetches       prometheus.Counter
	flightsMerged prometheus.Counter
	rollbacks     prometheus.Counter
	polls         prometheus.Counter
	pollErrors    prometheus.Counter
	flushes       prometheus.Counter
	notifications prometheus.Counter
}

// NewMetrics registers and returns the cache metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := MetricsConfig{
		Namespace: "eastui",
		Subsystem: "dataset",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	counter := func(name, help string) prometheus.Counter {
		return promauto.With(cfg.Registry).NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: cfg.ConstLabels,
		})
	}

	return &Metrics{
		hits:          counter("cache_hits_total", "Cache lookups served from a local entry."),
		misses:        counter("cache_misses_total", "Cache lookups with no local entry."),
		fetches:       counter("fetches_total", "Full content fetches from the remote store."),
		flightsMerged: counter("preload_flights_merged_total", "Preloads that joined an existing in-flight fetch."),
		rollbacks:     counter("write_rollbacks_total", "Optimistic writes rolled back after a remote failure."),
		polls:         counter("polls_total", "Workspace hash poll cycles."),
		pollErrors:    counter("poll_errors_total", "Poll cycles or per-path fetches that failed."),
		flushes:       counter("notify_flushes_total", "Notification flush cycles delivered."),
		notifications: counter("notifications_total", "Per-key change events delivered."),
	}
}
