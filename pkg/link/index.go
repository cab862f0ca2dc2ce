package link

import (
	"github.com/fpga-tooling/fabriclink/pkg/arch"
)

// PortPairing is the physical counterpart of an operating port together
// with the accepted pin range on that physical port.
type PortPairing struct {
	Port  *arch.Port
	Range arch.BitRange
}

// Index is the annotation index produced by a link run: the resolved
// physical mode per block type, the physical counterpart per operating
// block type, and the physical pairing per operating port. All maps are
// keyed by identity, never by name (names repeat across the tree), and the
// index is append-only: entries are added exactly once and never
// overwritten.
type Index struct {
	physicalModes  map[*arch.BlockType]*arch.Mode
	physicalBlocks map[*arch.BlockType]*arch.BlockType
	physicalPorts  map[*arch.Port]PortPairing
}

// NewIndex creates an empty annotation index.
func NewIndex() *Index {
	return &Index{
		physicalModes:  make(map[*arch.BlockType]*arch.Mode),
		physicalBlocks: make(map[*arch.BlockType]*arch.BlockType),
		physicalPorts:  make(map[*arch.Port]PortPairing),
	}
}

// AddPhysicalMode records the chosen physical mode for a block type. The
// mode must belong to the block type and the block type must not be
// annotated yet.
func (ix *Index) AddPhysicalMode(bt *arch.BlockType, m *arch.Mode) error {
	if m == nil || m.Parent != bt {
		return newError("AddPhysicalMode", "mode", modeName(m), nil, ErrModeNotFound)
	}
	if _, ok := ix.physicalModes[bt]; ok {
		return newError("AddPhysicalMode", "block_type", bt.Name, nil, ErrDuplicateEntry)
	}
	ix.physicalModes[bt] = m
	return nil
}

// PhysicalMode returns the chosen physical mode for a block type, or nil
// if the block type has not been annotated.
func (ix *Index) PhysicalMode(bt *arch.BlockType) *arch.Mode {
	return ix.physicalModes[bt]
}

// AddPhysicalBlockType records the physical counterpart of an operating
// block type.
func (ix *Index) AddPhysicalBlockType(operating, physical *arch.BlockType) error {
	if _, ok := ix.physicalBlocks[operating]; ok {
		return newError("AddPhysicalBlockType", "block_type", operating.Name, nil, ErrDuplicateEntry)
	}
	ix.physicalBlocks[operating] = physical
	return nil
}

// PhysicalBlockType returns the physical counterpart of an operating block
// type, or nil if the block type is unpaired.
func (ix *Index) PhysicalBlockType(operating *arch.BlockType) *arch.BlockType {
	return ix.physicalBlocks[operating]
}

// AddPortPairing records the physical counterpart of an operating port and
// the accepted pin range on it.
func (ix *Index) AddPortPairing(operating *arch.Port, physical *arch.Port, r arch.BitRange) error {
	if _, ok := ix.physicalPorts[operating]; ok {
		return newError("AddPortPairing", "port", operating.Name, nil, ErrDuplicateEntry)
	}
	ix.physicalPorts[operating] = PortPairing{Port: physical, Range: r}
	return nil
}

// PortPairing returns the pairing recorded for an operating port.
func (ix *Index) PortPairing(operating *arch.Port) (PortPairing, bool) {
	pp, ok := ix.physicalPorts[operating]
	return pp, ok
}

// NumPhysicalModes returns how many block types have a physical-mode entry.
func (ix *Index) NumPhysicalModes() int {
	return len(ix.physicalModes)
}

// NumBlockPairings returns how many operating block types are paired.
func (ix *Index) NumBlockPairings() int {
	return len(ix.physicalBlocks)
}

// NumPortPairings returns how many operating ports are paired.
func (ix *Index) NumPortPairings() int {
	return len(ix.physicalPorts)
}

func modeName(m *arch.Mode) string {
	if m == nil {
		return ""
	}
	return m.Name
}
