package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/fpga-tooling/fabriclink/pkg/annotation"
	"github.com/fpga-tooling/fabriclink/pkg/arch"
	"github.com/fpga-tooling/fabriclink/pkg/link"
)

func main() {
	configFile := flag.String("config", "", "Optional linker configuration file (YAML)")
	flag.Parse()

	cfg := link.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = link.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	fmt.Println("🔗 fabriclink - annotation linker demo")

	// Assemble a small fabric: a CLB whose BLE offers an operating
	// 4-input LUT view and a physical fracturable-LUT implementation.
	fmt.Println("\n🧱 Building demo fabric...")
	roots := buildFabric()
	fmt.Println("  Root: clb (default -> ble -> {lut_mode, phys})")

	records := buildAnnotations()
	fmt.Printf("  Annotations: %d records\n", len(records))

	fmt.Println("\n⚙️  Running link phases...")
	linker := link.NewLinker(roots, records, cfg)
	result, err := linker.Run(context.Background())
	if err != nil {
		log.Fatalf("Link run failed: %v", err)
	}

	fmt.Println("\n📋 Results:")
	fmt.Printf("  Run ID:          %s\n", result.RunID)
	fmt.Printf("  Physical modes:  %d (inferred %d)\n", result.Index.NumPhysicalModes(), result.InferredModes)
	fmt.Printf("  Check:           %s (%d violations)\n", passFail(result.Check.Valid), len(result.Check.Violations))
	fmt.Printf("  Block pairings:  %d (errors %d)\n", result.PairedBlocks, result.PairingErrors)
	fmt.Printf("  Port pairings:   %d\n", result.Index.NumPortPairings())
	fmt.Printf("  Duration:        %s\n", result.Duration)
}

func passFail(ok bool) string {
	if ok {
		return "✅ passed"
	}
	return "❌ failed"
}

// buildFabric assembles the demo block-type tree. In a real flow this
// structure comes from the architecture compiler.
func buildFabric() []*arch.BlockType {
	clb := arch.NewBlockType("clb")
	clb.AddPort("I", 10)
	clb.AddPort("O", 4)

	ble := clb.AddMode("default").AddChild("ble")

	lut4 := ble.AddMode("lut_mode").AddChild("lut4")
	lut4.AddPort("in", 4)
	lut4.AddPort("out", 1)

	frac := ble.AddMode("phys").AddChild("frac_lut")
	frac.AddPort("in", 8)
	frac.AddPort("out", 2)

	return []*arch.BlockType{clb}
}

// buildAnnotations returns the demo annotation records: one physical-mode
// declaration for the BLE and one operating-to-physical pairing for the LUT.
func buildAnnotations() []*annotation.Record {
	return []*annotation.Record{
		{
			PhysicalTypes:    []string{"clb", "ble"},
			PhysicalModes:    []string{"default"},
			PhysicalModeName: "phys",
		},
		{
			OperatingTypes: []string{"clb", "ble", "lut4"},
			OperatingModes: []string{"default", "lut_mode"},
			PhysicalTypes:  []string{"clb", "ble", "frac_lut"},
			PhysicalModes:  []string{"default", "phys"},
		},
	}
}
