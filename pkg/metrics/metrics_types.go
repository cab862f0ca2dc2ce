package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the annotation linker
type Registry struct {
	// Annotation Metrics
	AnnotationsTotal   *prometheus.CounterVec
	PhaseDuration      *prometheus.HistogramVec
	PhaseErrorsTotal   *prometheus.CounterVec
	CheckViolations    prometheus.Gauge
	RecordsTotal       prometheus.Gauge
	PairedPortsTotal   prometheus.Counter
	PairedBlocksTotal  prometheus.Counter
	InferredModesTotal prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	registryOnce    sync.Once
)

// DefaultRegistry returns the global metrics registry singleton
func DefaultRegistry() *Registry {
	registryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all linker metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initLinkMetrics()
	return r
}

// PrometheusRegistry exposes the underlying registry for HTTP handlers
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
