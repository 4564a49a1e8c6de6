// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build tca9555_nolocalmemory

package tca9555

import (
	"testing"

	"github.com/GermanBionicSystems/tcaio/tca9555/tca9555test"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestChangeMaskReadsDevice(t *testing.T) {
	for _, test := range []struct {
		name   string
		change func(d *Dev) error
		ops    []i2ctest.IO
	}{
		{
			name:   "output",
			change: func(d *Dev) error { return d.ChangeOutputMask(0x00F0, 0x0030) },
			ops: []i2ctest.IO{
				{Addr: address, W: []byte{0x02}, R: []byte{0x0F, 0x12}},
				{Addr: address, W: []byte{0x02, 0x3F, 0x12}},
			},
		},
		{
			name:   "polarity",
			change: func(d *Dev) error { return d.ChangePolarityMask(0xFF00, 0xA5A5) },
			ops: []i2ctest.IO{
				{Addr: address, W: []byte{0x04}, R: []byte{0x11, 0x00}},
				{Addr: address, W: []byte{0x04, 0x11, 0xA5}},
			},
		},
		{
			name:   "config",
			change: func(d *Dev) error { return d.ChangeConfigMask(0x0101, 0x0000) },
			ops: []i2ctest.IO{
				{Addr: address, W: []byte{0x06}, R: []byte{0xFF, 0xFF}},
				{Addr: address, W: []byte{0x06, 0xFE, 0xFE}},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			b := i2ctest.Playback{
				Ops:       append(creation(0x8800, 0x0000, 0x07BF), test.ops...),
				DontPanic: true,
			}
			defer b.Close()
			dev, err := New(&b, TCA9555, address)
			if err != nil {
				t.Fatal(err)
			}
			defer dev.Close()
			if err := test.change(dev); err != nil {
				t.Fatal(err)
			}
			if err := b.Close(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestMaskedUpdateAfterPoke(t *testing.T) {
	sim := tca9555test.New(address)
	dev, err := New(sim, TCA9555, address)
	if err != nil {
		t.Fatal(err)
	}
	defer dev.Close()

	if err := dev.ChangeOutputMask(0xFFFF, 0x0000); err != nil {
		t.Fatal(err)
	}
	// Another bus master changes the latch.
	sim.Poke(address, tca9555test.Output, 0xA500)
	if err := dev.ChangeOutputMask(0x000F, 0x0003); err != nil {
		t.Fatal(err)
	}
	if got := sim.Peek(address, tca9555test.Output); got != 0xA503 {
		t.Fatalf("output = %#04x, want 0xa503", got)
	}
}

func TestPinOutReadsDevice(t *testing.T) {
	b := i2ctest.Playback{
		Ops: append(creation(0x0000, 0x0000, 0xFFFF),
			i2ctest.IO{Addr: address, W: []byte{0x02}, R: []byte{0x80, 0x00}},
			i2ctest.IO{Addr: address, W: []byte{0x02, 0x81, 0x00}},
			i2ctest.IO{Addr: address, W: []byte{0x06}, R: []byte{0x7F, 0xFF}},
			i2ctest.IO{Addr: address, W: []byte{0x06, 0x7E, 0xFF}},
		),
	}
	defer b.Close()
	dev, err := New(&b, TCA9555, address)
	if err != nil {
		t.Fatal(err)
	}
	defer dev.Close()
	if err := dev.Pins[0].Out(gpio.High); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
}
