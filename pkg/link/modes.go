package link

import (
	"github.com/fpga-tooling/fabriclink/pkg/annotation"
	"github.com/fpga-tooling/fabriclink/pkg/arch"
	"github.com/fpga-tooling/fabriclink/pkg/logging"
)

// annotateExplicitModes applies every physical-mode declaration record to
// the index. Each record's path is resolved against the given roots in
// order; the first resolving root wins. Any record that fails to resolve,
// names a missing mode, or re-annotates an already annotated block type is
// a configuration error that aborts the whole run.
func annotateExplicitModes(roots []*arch.BlockType, records []*annotation.Record, ix *Index, log logging.Logger) error {
	for _, r := range records {
		if !r.DeclaresPhysicalMode() {
			continue
		}

		typeNames, modeNames, ok := r.ModeTarget()
		if !ok {
			return newError("AnnotateExplicit", "record", r.PhysicalModeName, nil, ErrInvalidRecord)
		}

		bt := findInRoots(roots, typeNames, modeNames)
		if bt == nil {
			return newError("AnnotateExplicit", "block_type", typeNames[len(typeNames)-1], typeNames, ErrPathNotFound)
		}

		mode := bt.FindMode(r.PhysicalModeName)
		if mode == nil {
			return newError("AnnotateExplicit", "mode", r.PhysicalModeName, typeNames, ErrModeNotFound)
		}

		if err := ix.AddPhysicalMode(bt, mode); err != nil {
			return err
		}

		log.Info("annotated physical mode",
			logging.Phase("explicit"),
			logging.BlockTypeName(bt.Name),
			logging.ModeName(mode.Name))
	}
	return nil
}

// annotateImplicitModes infers the physical mode for every block type the
// explicit phase left unannotated, walking depth-first from each root. A
// single-mode block type defaults to its sole mode; a multi-mode block
// type without an entry is an unresolved ambiguity: it is reported, left
// unannotated, and its subtree is skipped. Descent continues only through
// each block type's chosen physical mode, so subtrees of unchosen modes
// receive no entries. Returns the number of inferred entries and the
// number of ambiguity errors.
func annotateImplicitModes(roots []*arch.BlockType, ix *Index, log logging.Logger) (inferred, errs int) {
	for _, root := range roots {
		if root == nil {
			continue
		}
		i, e := inferModes(root, ix, log)
		inferred += i
		errs += e
	}
	return inferred, errs
}

func inferModes(bt *arch.BlockType, ix *Index, log logging.Logger) (inferred, errs int) {
	if bt.IsPrimitive() {
		return 0, 0
	}

	mode := ix.PhysicalMode(bt)
	if mode == nil {
		if len(bt.Modes) != 1 {
			// No default to fall back on. The tentative entry the
			// original flow wrote here is deliberately not committed, so
			// the index never carries entries tied to reported errors.
			log.Error("unable to infer a physical mode for multi-mode block type",
				logging.Phase("implicit"),
				logging.BlockTypeName(bt.Name),
				logging.Count(len(bt.Modes)))
			return 0, 1
		}

		mode = bt.Modes[0]
		if err := ix.AddPhysicalMode(bt, mode); err != nil {
			log.Error("failed to record inferred mode", logging.Phase("implicit"), logging.Error(err))
			return 0, 1
		}
		inferred++
		log.Info("inferred physical mode",
			logging.Phase("implicit"),
			logging.BlockTypeName(bt.Name),
			logging.ModeName(mode.Name))
	}

	for _, child := range mode.Children {
		i, e := inferModes(child, ix, log)
		inferred += i
		errs += e
	}
	return inferred, errs
}
