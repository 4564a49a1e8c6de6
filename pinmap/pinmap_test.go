// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pinmap

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio/gpiotest"
)

// extPin is an expander pin known only by its flat identifier.
type extPin uint

func (p extPin) IsExternal() bool { return true }
func (p extPin) ID() uint         { return uint(p) }

func TestRoundTrip(t *testing.T) {
	for id := uint(0); id < 4*GPIOsPerChip; id++ {
		p := extPin(id)
		chip, err := ChipIndex(p)
		if err != nil {
			t.Fatal(err)
		}
		number, err := LocalNumber(p)
		if err != nil {
			t.Fatal(err)
		}
		if number < 0 || number >= GPIOsPerChip {
			t.Fatalf("LocalNumber(%d) = %d out of range", id, number)
		}
		if got := uint(chip*GPIOsPerChip + number); got != id {
			t.Fatalf("chip %d number %d maps back to %d, want %d", chip, number, got, id)
		}
		if got := FlatID(chip, number); got != id {
			t.Fatalf("FlatID(%d, %d) = %d, want %d", chip, number, got, id)
		}
	}
}

func TestAddressing(t *testing.T) {
	for _, test := range []struct {
		name   string
		id     uint
		chip   int
		number int
	}{
		{name: "first", id: 0, chip: 0, number: 0},
		{name: "last on chip 0", id: 15, chip: 0, number: 15},
		{name: "first on chip 1", id: 16, chip: 1, number: 0},
		{name: "middle of chip 1", id: 27, chip: 1, number: 11},
	} {
		t.Run(test.name, func(t *testing.T) {
			p := extPin(test.id)
			chip, err := ChipIndex(p)
			if err != nil || chip != test.chip {
				t.Errorf("ChipIndex() = %d, %v; want %d", chip, err, test.chip)
			}
			number, err := LocalNumber(p)
			if err != nil || number != test.number {
				t.Errorf("LocalNumber() = %d, %v; want %d", number, err, test.number)
			}
		})
	}
}

func TestNative(t *testing.T) {
	p := Native{PinIO: &gpiotest.Pin{N: "GP4", Num: 4}}
	if p.IsExternal() {
		t.Fatal("native pin reported as external")
	}
	if p.ID() != 4 {
		t.Errorf("ID() = %d, want 4", p.ID())
	}
	if _, err := LocalNumber(p); !errors.Is(err, ErrNotExternal) {
		t.Errorf("LocalNumber() error = %v, want %v", err, ErrNotExternal)
	}
	if _, err := ChipIndex(p); !errors.Is(err, ErrNotExternal) {
		t.Errorf("ChipIndex() error = %v, want %v", err, ErrNotExternal)
	}
}
