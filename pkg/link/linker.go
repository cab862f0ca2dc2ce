package link

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fpga-tooling/fabriclink/pkg/annotation"
	"github.com/fpga-tooling/fabriclink/pkg/arch"
	"github.com/fpga-tooling/fabriclink/pkg/logging"
	"github.com/fpga-tooling/fabriclink/pkg/metrics"
)

// Linker resolves a list of annotation records against the block-type
// trees of a fabric. It owns the resulting annotation index for the
// duration of Run; afterwards the caller does.
type Linker struct {
	roots   []*arch.BlockType
	records []*annotation.Record
	cfg     Config
	log     logging.Logger
	reg     *metrics.Registry
}

// Result summarizes one link run.
type Result struct {
	RunID          string
	Index          *Index
	Check          *CheckResult
	InferredModes  int
	ImplicitErrors int
	PairedBlocks   int
	PairingErrors  int
	Duration       time.Duration
}

// NewLinker creates a linker over the given top-level roots and records.
// The roots are an explicit parameter rather than ambient process state so
// independent fabrics can be linked side by side.
func NewLinker(roots []*arch.BlockType, records []*annotation.Record, cfg Config) *Linker {
	return &Linker{
		roots:   roots,
		records: records,
		cfg:     cfg,
		log:     logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel)),
		reg:     metrics.DefaultRegistry(),
	}
}

// SetLogger replaces the run's log stream.
func (l *Linker) SetLogger(log logging.Logger) {
	l.log = log
}

// SetMetrics replaces the metrics registry the run records into.
func (l *Linker) SetMetrics(reg *metrics.Registry) {
	l.reg = reg
}

// Run executes the link sequence: explicit mode annotation, implicit mode
// inference, the consistency check, then operating/physical pairing. Each
// phase reads the tree and the records and appends to the shared index;
// the context is consulted only at phase boundaries. An explicit-phase
// failure aborts the run; pairing failures are reported per record and the
// run continues.
func (l *Linker) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	log := l.log.With(logging.Component("linker"), logging.RunID(runID))

	result := &Result{
		RunID: runID,
		Index: NewIndex(),
	}
	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	if err := annotation.ValidateRecords(l.records); err != nil {
		return result, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if l.cfg.Metrics {
		l.reg.SetRecordsTotal(len(l.records))
	}

	timer := logging.StartTimer(log, "link run finished", logging.Count(len(l.records)))

	// Phase 1: explicit physical-mode annotation. A record that cannot be
	// resolved is a configuration error that aborts the run.
	if err := l.runPhase(ctx, "explicit", func() error {
		return annotateExplicitModes(l.roots, l.records, result.Index, log)
	}); err != nil {
		log.Error("link run aborted", logging.Phase("explicit"), logging.Error(err))
		if l.cfg.Metrics {
			l.reg.RecordPhaseError("explicit")
		}
		return result, err
	}

	// Phase 2: implicit inference by the default-mode rule.
	if err := l.runPhase(ctx, "implicit", func() error {
		inferred, errs := annotateImplicitModes(l.roots, result.Index, log)
		result.InferredModes = inferred
		result.ImplicitErrors = errs
		if l.cfg.Metrics {
			l.reg.RecordInferredModes(inferred)
			l.reg.RecordPhaseErrors("implicit", errs)
		}
		return nil
	}); err != nil {
		return result, err
	}

	// Phase 3: consistency check. Advisory unless FailOnCheck is set.
	if err := l.runPhase(ctx, "check", func() error {
		result.Check = CheckPhysicalModes(l.roots, result.Index)
		if l.cfg.Metrics {
			l.reg.SetCheckViolations(len(result.Check.Violations))
		}
		for _, v := range result.Check.Violations {
			log.Error(v.Message, logging.Phase("check"), logging.String("violation", v.Type.String()))
		}
		if result.Check.Valid {
			log.Info("physical mode check passed", logging.Phase("check"))
		} else {
			log.Error("physical mode check failed", logging.Phase("check"),
				logging.Count(len(result.Check.Violations)))
			if l.cfg.FailOnCheck {
				return fmt.Errorf("%w: %d violations", ErrCheckFailed, len(result.Check.Violations))
			}
		}
		return nil
	}); err != nil {
		return result, err
	}

	// Phase 4: operating/physical pairing, per record.
	if err := l.runPhase(ctx, "pairing", func() error {
		for _, r := range l.records {
			if !r.IsOperating() || !r.IsPhysical() {
				continue
			}
			ports, err := pairRecord(l.roots, r, result.Index, log)
			if err != nil {
				result.PairingErrors++
				log.Error("failed to pair operating block type with physical block type",
					logging.Phase("pairing"),
					logging.TypePath(r.OperatingTypes),
					logging.String("physical_path", joinPath(r.PhysicalTypes)),
					logging.Error(err))
				if l.cfg.Metrics {
					l.reg.RecordPhaseError("pairing")
				}
				continue
			}
			result.PairedBlocks++
			if l.cfg.Metrics {
				l.reg.RecordPairing(ports)
				l.reg.RecordAnnotation("pairing", "success")
			}
		}
		return nil
	}); err != nil {
		return result, err
	}

	timer.End()
	return result, nil
}

func joinPath(names []string) string {
	return strings.Join(names, "/")
}

// runPhase runs one phase with duration accounting and a context check at
// the phase boundary.
func (l *Linker) runPhase(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	err := fn()
	if l.cfg.Metrics {
		l.reg.RecordPhase(name, time.Since(start))
	}
	return err
}
