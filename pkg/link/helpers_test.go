package link

import (
	"github.com/fpga-tooling/fabriclink/pkg/arch"
	"github.com/fpga-tooling/fabriclink/pkg/logging"
)

func testLogger() logging.Logger {
	return logging.NewNopLogger()
}

// ambiguousRoot builds root A with two modes, each holding one primitive:
// A -> m1 -> B, A -> m2 -> C. No default mode can be inferred for A.
func ambiguousRoot() *arch.BlockType {
	a := arch.NewBlockType("A")
	a.AddMode("m1").AddChild("B")
	a.AddMode("m2").AddChild("C")
	return a
}

// soloChainRoot builds a single-mode chain:
// A -> only -> D -> solo -> leaf (primitive).
func soloChainRoot() *arch.BlockType {
	a := arch.NewBlockType("A")
	d := a.AddMode("only").AddChild("D")
	d.AddMode("solo").AddChild("leaf")
	return a
}

// fabricRoot builds a deeper tree exercising explicit annotation and
// pairing together:
//
//	clb -> default -> ble
//	ble modes: lut_mode -> lut4 (ports in[4], out[1])
//	           phys     -> frac_lut (ports in[8], out[2])
func fabricRoot() *arch.BlockType {
	clb := arch.NewBlockType("clb")
	ble := clb.AddMode("default").AddChild("ble")

	lut4 := ble.AddMode("lut_mode").AddChild("lut4")
	lut4.AddPort("in", 4)
	lut4.AddPort("out", 1)

	frac := ble.AddMode("phys").AddChild("frac_lut")
	frac.AddPort("in", 8)
	frac.AddPort("out", 2)

	return clb
}

// pairingRoot builds tile -> default -> {OP(in[4]), PH(in[8])}.
func pairingRoot() *arch.BlockType {
	tile := arch.NewBlockType("tile")
	def := tile.AddMode("default")
	op := def.AddChild("OP")
	op.AddPort("in", 4)
	ph := def.AddChild("PH")
	ph.AddPort("in", 8)
	return tile
}
