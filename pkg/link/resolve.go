package link

import (
	"github.com/fpga-tooling/fabriclink/pkg/arch"
)

// FindBlockTypeByPath walks the block-type tree from root along the given
// path: typeNames[0] must match the root's name, and each subsequent type
// name is reached by descending through the mode named at the same step.
// A path of N type names carries N-1 mode names. The walk is a pure read:
// it returns the reached block type, or nil as soon as any step fails to
// match. There is no backtracking; same-named siblings under different
// modes are disambiguated only by the mode name in the path.
func FindBlockTypeByPath(root *arch.BlockType, typeNames, modeNames []string) *arch.BlockType {
	if root == nil || len(typeNames) != len(modeNames)+1 {
		return nil
	}

	// A single-element path addresses the root itself.
	if len(typeNames) == 1 {
		if typeNames[0] == root.Name {
			return root
		}
		return nil
	}

	cur := root
	for i := 0; i < len(typeNames)-1; i++ {
		if typeNames[i] != cur.Name {
			return nil
		}
		mode := cur.FindMode(modeNames[i])
		if mode == nil {
			return nil
		}
		cur = mode.FindChild(typeNames[i+1])
		if cur == nil {
			return nil
		}
	}
	return cur
}

// findInRoots resolves a path against every top-level root in order and
// returns the first match. Roots whose name does not match the head of the
// path are bypassed without a descent.
func findInRoots(roots []*arch.BlockType, typeNames, modeNames []string) *arch.BlockType {
	for _, root := range roots {
		if root == nil || len(typeNames) == 0 || typeNames[0] != root.Name {
			continue
		}
		if bt := FindBlockTypeByPath(root, typeNames, modeNames); bt != nil {
			return bt
		}
	}
	return nil
}
