package link

import (
	"github.com/fpga-tooling/fabriclink/pkg/annotation"
	"github.com/fpga-tooling/fabriclink/pkg/arch"
	"github.com/fpga-tooling/fabriclink/pkg/logging"
)

// portEntry is a staged port pairing, held back until every operating
// port of a block pairing has mapped successfully.
type portEntry struct {
	operating *arch.Port
	physical  *arch.Port
	accepted  arch.BitRange
}

// pairRecord pairs the operating block type a record addresses with its
// physical counterpart, port by port. Both paths are resolved against the
// given roots; the first root where both resolve wins. A failure anywhere
// (paths, a missing physical port, a range that does not fit) fails the
// whole record and leaves the index untouched. On success it returns how
// many ports were paired.
func pairRecord(roots []*arch.BlockType, r *annotation.Record, ix *Index, log logging.Logger) (int, error) {
	if !r.IsPhysical() {
		return 0, newError("PairBlockTypes", "record", lastName(r.OperatingTypes), r.OperatingTypes, ErrInvalidRecord)
	}

	var operating, physical *arch.BlockType
	for _, root := range roots {
		if root == nil || r.OperatingTypes[0] != root.Name {
			continue
		}
		op := FindBlockTypeByPath(root, r.OperatingTypes, r.OperatingModes)
		if op == nil {
			continue
		}
		phy := FindBlockTypeByPath(root, r.PhysicalTypes, r.PhysicalModes)
		if phy == nil {
			continue
		}
		operating, physical = op, phy
		break
	}
	if operating == nil {
		return 0, newError("PairBlockTypes", "block_type", lastName(r.OperatingTypes), r.OperatingTypes, ErrPathNotFound)
	}

	entries, err := pairPorts(operating, physical, r)
	if err != nil {
		return 0, err
	}

	// All ports mapped; commit atomically.
	for _, e := range entries {
		if err := ix.AddPortPairing(e.operating, e.physical, e.accepted); err != nil {
			return 0, err
		}
	}
	if err := ix.AddPhysicalBlockType(operating, physical); err != nil {
		return 0, err
	}

	log.Info("paired operating block type with physical block type",
		logging.Phase("pairing"),
		logging.BlockTypeName(operating.Name),
		logging.String("physical_block_type", physical.Name),
		logging.Count(len(entries)))
	return len(entries), nil
}

// pairPorts maps every port of the operating block type onto a port of the
// physical block type. An explicit mapping in the record supplies the
// physical port name and pin span; every other port inherits its own name
// and full width. Nothing is written to the index here.
func pairPorts(operating, physical *arch.BlockType, r *annotation.Record) ([]portEntry, error) {
	entries := make([]portEntry, 0, len(operating.Ports))

	for _, opPort := range operating.Ports {
		expectedName := opPort.Name
		expectedRange := arch.FullRange(opPort.Width)
		if pm, ok := r.MappingFor(opPort.Name); ok {
			expectedName = pm.PhysicalPort
			if pm.Explicit() {
				expectedRange = arch.BitRange{Lo: pm.Lo, Hi: pm.Hi}
			}
		}

		phyPort := physical.FindPort(expectedName)
		if phyPort == nil {
			return nil, newError("PairPorts", "port", expectedName, r.PhysicalTypes, ErrPortNotFound)
		}
		if !expectedRange.FitsWidth(phyPort.Width) {
			return nil, newError("PairPorts", "port", expectedName, r.PhysicalTypes, ErrRangeNotContained)
		}

		entries = append(entries, portEntry{
			operating: opPort,
			physical:  phyPort,
			accepted:  expectedRange,
		})
	}
	return entries, nil
}

func lastName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[len(names)-1]
}
