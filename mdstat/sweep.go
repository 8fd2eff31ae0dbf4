package main

import (
	"fmt"
	"github.com/pv8x/mdhash"
	"gopkg.in/yaml.v3"
	"os"
)

// Copyright © 2026 pv8x. Licensed under the Apache-2.0 license.
/* Sweep files describe a list of configurations to measure side by side, e.g.:

   - width: 20
     block: 20
     rounds: 3
     rotation: 3
     samples: 500
   - width: 1
     block: 2
     mixer: xor
     samples: 500

Zero values fall back to the construction defaults; the IV of every experiment is
derived from the seed so that sweeps replay exactly. */

type experiment struct {
	Width    int    `yaml:"width"`
	Block    int    `yaml:"block"`
	Rounds   int    `yaml:"rounds"`
	Rotation int    `yaml:"rotation"`
	Samples  int    `yaml:"samples"`
	Mixer    string `yaml:"mixer"`
}

func loadSweep(path string) ([]experiment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var experiments []experiment
	if err := yaml.Unmarshal(raw, &experiments); err != nil {
		return nil, err
	}
	return experiments, nil
}

func runSweep(experiments []experiment, seed [32]byte) error {
	fmt.Println("\nwidth  block  rounds  rot  mixer  avalanche")
	for _, x := range experiments {
		if x.Width == 0 {
			x.Width = 20
		}
		if x.Block == 0 {
			x.Block = x.Width
		}
		if x.Samples == 0 {
			x.Samples = 100
		}
		var mix mdhash.Mixer
		name := "arx"
		if x.Mixer == "xor" {
			mix, name = mdhash.XOR{}, "xor"
		}
		engine, err := mdhash.New(mdhash.Config{
			Width:      x.Width,
			BlockWidth: x.Block,
			Rounds:     x.Rounds,
			Rotation:   x.Rotation,
		}, mix, mdhash.SeedIV(seed, x.Width, mdhash.ByteOriented))
		if err != nil {
			return err
		}
		cfg := engine.Config()
		fmt.Printf("%5d  %5d  %6d  %3d  %5s  %8.2f%%\n", cfg.Width, cfg.BlockWidth,
			cfg.Rounds, cfg.Rotation, name, avalanche(engine, x.Samples))
	}
	return nil
}
