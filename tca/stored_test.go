// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tca9555_noreadback && !tca9555_nolocalmemory

package tca

import (
	"errors"
	"testing"

	"github.com/GermanBionicSystems/tcaio/tca9555/tca9555test"
)

func TestReadStoredDivergence(t *testing.T) {
	e, sim := newExpander(t)
	if err := e.Reset(); err != nil {
		t.Fatal(err)
	}
	const chip = 1
	addr := chipAddresses[chip]

	live, _ := e.ReadOutput(chip)
	stored, _ := e.StoredOutput(chip)
	if live != stored || stored != BoardDefaults[chip].Output {
		t.Fatalf("live %#04x stored %#04x", live, stored)
	}

	sim.Poke(addr, tca9555test.Output, 0x00F0)
	live, err := e.ReadOutput(chip)
	if err != nil {
		t.Fatal(err)
	}
	stored, err = e.StoredOutput(chip)
	if err != nil {
		t.Fatal(err)
	}
	if live == stored {
		t.Fatalf("read_output and stored_output agree at %#04x after an out-of-band write", live)
	}

	if err := e.ChangeOutputMask(chip, 0x0001, 0x0001); err != nil {
		t.Fatal(err)
	}
	live, _ = e.ReadOutput(chip)
	stored, _ = e.StoredOutput(chip)
	if live != stored || stored != 0x0001 {
		t.Fatalf("after masked write: live %#04x stored %#04x, want 0x0001", live, stored)
	}
}

func TestReadStoredRange(t *testing.T) {
	e, _ := newExpander(t)
	for _, fn := range []func(int) (uint16, error){
		e.ReadInput, e.ReadOutput, e.ReadConfig, e.ReadPolarity,
		e.StoredOutput, e.StoredConfig, e.StoredPolarity,
	} {
		for _, chip := range []int{-1, ChipCount} {
			if _, err := fn(chip); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("chip %d: got %v", chip, err)
			}
		}
	}
}

func TestStoredAfterReset(t *testing.T) {
	e, _ := newExpander(t)
	if err := e.Reset(); err != nil {
		t.Fatal(err)
	}
	for chip, want := range BoardDefaults {
		out, _ := e.StoredOutput(chip)
		pol, _ := e.StoredPolarity(chip)
		cfg, _ := e.StoredConfig(chip)
		if got := (PortState{Output: out, Polarity: pol, Config: cfg}); got != want {
			t.Errorf("chip %d: got %+v, want %+v", chip, got, want)
		}
	}
}
