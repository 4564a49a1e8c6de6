// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca

import "github.com/GermanBionicSystems/tcaio/tca9555"

// ChipCount is the number of expanders on the board.
const ChipCount = 2

const chipVariant = tca9555.TCA9555

var chipAddresses = [ChipCount]uint16{0x20, 0x26}

// PortState is the content of the writable registers of one chip.
type PortState struct {
	Output   uint16
	Polarity uint16
	Config   uint16
}

// BoardDefaults is the state Reset puts each chip in. The first chip keeps
// both ADC muxes disabled.
var BoardDefaults = [ChipCount]PortState{
	{Output: 0x8800, Polarity: 0x0000, Config: 0x07BF},
	{Output: 0x0000, Polarity: 0x0000, Config: 0xFCE6},
}

// ChipAddress returns the I²C address of chip.
func ChipAddress(chip int) (uint16, error) {
	if err := checkChip(chip); err != nil {
		return 0, err
	}
	return chipAddresses[chip], nil
}
