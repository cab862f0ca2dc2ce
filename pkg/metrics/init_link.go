package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLinkMetrics() {
	r.AnnotationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fabriclink_annotations_total",
			Help: "Total number of annotation entries recorded, by phase and outcome",
		},
		[]string{"phase", "status"},
	)

	r.PhaseDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fabriclink_phase_duration_seconds",
			Help:    "Duration of each link phase in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"phase"},
	)

	r.PhaseErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "fabriclink_phase_errors_total",
			Help: "Total number of errors reported, by phase",
		},
		[]string{"phase"},
	)

	r.CheckViolations = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "fabriclink_check_violations",
			Help: "Number of violations found by the last physical-mode check",
		},
	)

	r.RecordsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "fabriclink_records_total",
			Help: "Number of annotation records consumed by the last run",
		},
	)

	r.PairedPortsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "fabriclink_paired_ports_total",
			Help: "Total number of operating ports paired to physical ports",
		},
	)

	r.PairedBlocksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "fabriclink_paired_blocks_total",
			Help: "Total number of operating block types paired to physical block types",
		},
	)

	r.InferredModesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "fabriclink_inferred_modes_total",
			Help: "Total number of physical modes inferred by the default-mode rule",
		},
	)
}
