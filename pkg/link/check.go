package link

import (
	"fmt"
	"time"

	"github.com/fpga-tooling/fabriclink/pkg/arch"
)

// ViolationType categorizes a physical-mode consistency violation
type ViolationType int

const (
	// MissingPhysicalMode marks a block type under a physical ancestor
	// chain that has no physical-mode entry.
	MissingPhysicalMode ViolationType = iota
	// UnexpectedPhysicalMode marks a block type outside any physical
	// ancestor chain that carries an entry anyway.
	UnexpectedPhysicalMode
)

func (vt ViolationType) String() string {
	switch vt {
	case MissingPhysicalMode:
		return "MissingPhysicalMode"
	case UnexpectedPhysicalMode:
		return "UnexpectedPhysicalMode"
	default:
		return "Unknown"
	}
}

// Violation represents one consistency violation found by the check pass
type Violation struct {
	Type      ViolationType
	BlockType *arch.BlockType
	Message   string
}

// CheckResult contains the results of checking the physical-mode
// annotation of every root against the tree consistency invariant
type CheckResult struct {
	Valid      bool        // True if no violations found
	Violations []Violation // List of all violations
	CheckedAt  time.Time   // When the check was performed
}

// CheckPhysicalModes walks every root and verifies the invariant the mode
// phases are supposed to establish: each non-primitive block type
// reachable from a root through an unbroken chain of chosen physical modes
// has exactly one entry, and no block type outside such a chain has one.
// All violations are collected in a single pass; the walk never mutates
// the index.
func CheckPhysicalModes(roots []*arch.BlockType, ix *Index) *CheckResult {
	result := &CheckResult{
		Valid:      true,
		Violations: make([]Violation, 0),
		CheckedAt:  time.Now(),
	}

	for _, root := range roots {
		if root == nil {
			continue
		}
		// A root is always physical.
		checkModes(root, true, ix, result)
	}

	result.Valid = len(result.Violations) == 0
	return result
}

func checkModes(bt *arch.BlockType, expectPhysical bool, ix *Index, result *CheckResult) {
	if bt.IsPrimitive() {
		return
	}

	chosen := ix.PhysicalMode(bt)
	if expectPhysical && chosen == nil {
		result.Violations = append(result.Violations, Violation{
			Type:      MissingPhysicalMode,
			BlockType: bt,
			Message:   fmt.Sprintf("block type %q has no physical mode", bt.Name),
		})
		return
	}
	if !expectPhysical && chosen != nil {
		result.Violations = append(result.Violations, Violation{
			Type:      UnexpectedPhysicalMode,
			BlockType: bt,
			Message: fmt.Sprintf("block type %q carries physical mode %q outside any physical ancestor chain",
				bt.Name, chosen.Name),
		})
		return
	}

	for _, mode := range bt.Modes {
		expectChild := expectPhysical && mode == chosen
		for _, child := range mode.Children {
			checkModes(child, expectChild, ix, result)
		}
	}
}
