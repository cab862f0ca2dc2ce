package metrics

import (
	"time"
)

// RecordAnnotation records one annotation entry outcome for a phase
func (r *Registry) RecordAnnotation(phase, status string) {
	r.AnnotationsTotal.WithLabelValues(phase, status).Inc()
}

// RecordPhase records the duration of a completed link phase
func (r *Registry) RecordPhase(phase string, duration time.Duration) {
	r.PhaseDuration.WithLabelValues(phase).Observe(duration.Seconds())
}

// RecordPhaseError counts one reported error for a phase
func (r *Registry) RecordPhaseError(phase string) {
	r.PhaseErrorsTotal.WithLabelValues(phase).Inc()
}

// RecordPhaseErrors counts n reported errors for a phase
func (r *Registry) RecordPhaseErrors(phase string, n int) {
	r.PhaseErrorsTotal.WithLabelValues(phase).Add(float64(n))
}

// SetCheckViolations publishes the violation count of the last check pass
func (r *Registry) SetCheckViolations(n int) {
	r.CheckViolations.Set(float64(n))
}

// SetRecordsTotal publishes how many records the current run consumes
func (r *Registry) SetRecordsTotal(n int) {
	r.RecordsTotal.Set(float64(n))
}

// RecordPairing records one committed block pairing and its port count
func (r *Registry) RecordPairing(ports int) {
	r.PairedBlocksTotal.Inc()
	r.PairedPortsTotal.Add(float64(ports))
}

// RecordInferredModes counts n default-mode inferences
func (r *Registry) RecordInferredModes(n int) {
	r.InferredModesTotal.Add(float64(n))
}
