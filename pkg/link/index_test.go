package link

import (
	"errors"
	"testing"

	"github.com/fpga-tooling/fabriclink/pkg/arch"
)

func TestIndex_AddPhysicalMode(t *testing.T) {
	root := ambiguousRoot()
	ix := NewIndex()

	if err := ix.AddPhysicalMode(root, root.Modes[0]); err != nil {
		t.Fatalf("AddPhysicalMode failed: %v", err)
	}
	if got := ix.PhysicalMode(root); got != root.Modes[0] {
		t.Errorf("PhysicalMode = %v, want m1", got)
	}
	if ix.NumPhysicalModes() != 1 {
		t.Errorf("NumPhysicalModes = %d, want 1", ix.NumPhysicalModes())
	}
}

func TestIndex_AddPhysicalMode_Duplicate(t *testing.T) {
	root := ambiguousRoot()
	ix := NewIndex()

	if err := ix.AddPhysicalMode(root, root.Modes[0]); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	err := ix.AddPhysicalMode(root, root.Modes[1])
	if !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("second add error = %v, want ErrDuplicateEntry", err)
	}
	// The first entry must survive.
	if got := ix.PhysicalMode(root); got != root.Modes[0] {
		t.Errorf("PhysicalMode = %v, want m1", got)
	}
}

func TestIndex_AddPhysicalMode_ForeignMode(t *testing.T) {
	root := ambiguousRoot()
	other := soloChainRoot()
	ix := NewIndex()

	err := ix.AddPhysicalMode(root, other.Modes[0])
	if !errors.Is(err, ErrModeNotFound) {
		t.Errorf("error = %v, want ErrModeNotFound", err)
	}
	if err := ix.AddPhysicalMode(root, nil); !errors.Is(err, ErrModeNotFound) {
		t.Errorf("nil mode error = %v, want ErrModeNotFound", err)
	}
}

func TestIndex_BlockAndPortPairings(t *testing.T) {
	tile := pairingRoot()
	op := tile.Modes[0].Children[0]
	ph := tile.Modes[0].Children[1]
	ix := NewIndex()

	if err := ix.AddPhysicalBlockType(op, ph); err != nil {
		t.Fatalf("AddPhysicalBlockType failed: %v", err)
	}
	if got := ix.PhysicalBlockType(op); got != ph {
		t.Errorf("PhysicalBlockType = %v, want PH", got)
	}
	if err := ix.AddPhysicalBlockType(op, ph); !errors.Is(err, ErrDuplicateEntry) {
		t.Error("duplicate block pairing should fail")
	}

	r := arch.BitRange{Lo: 0, Hi: 4}
	if err := ix.AddPortPairing(op.Ports[0], ph.Ports[0], r); err != nil {
		t.Fatalf("AddPortPairing failed: %v", err)
	}
	pp, ok := ix.PortPairing(op.Ports[0])
	if !ok {
		t.Fatal("port pairing not found")
	}
	if pp.Port != ph.Ports[0] || pp.Range != r {
		t.Errorf("pairing = %+v, want PH.in with 0..4", pp)
	}
	if err := ix.AddPortPairing(op.Ports[0], ph.Ports[0], r); !errors.Is(err, ErrDuplicateEntry) {
		t.Error("duplicate port pairing should fail")
	}

	if ix.NumBlockPairings() != 1 || ix.NumPortPairings() != 1 {
		t.Errorf("counts = %d/%d, want 1/1", ix.NumBlockPairings(), ix.NumPortPairings())
	}
}
