// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pinmap maps a flat pin identifier space onto the pins of a set of
// 16-bit I²C GPIO expanders.
//
// Expander pins are numbered consecutively: pins 0 to 15 belong to chip 0,
// 16 to 31 to chip 1, and so on. Pins native to the host are not part of
// that space and are rejected by the mapping functions.
package pinmap

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

// GPIOsPerChip is the number of GPIOs on each expander chip, one bit per
// pin in a 16-bit port pair.
const GPIOsPerChip = 16

// ErrNotExternal is returned when a pin that is not attached to an expander
// is used where an expander pin is required.
var ErrNotExternal = errors.New("pin is not an external pin")

// Pin is the minimal capability needed to address a pin.
type Pin interface {
	// IsExternal returns true if the pin lives on an expander chip.
	IsExternal() bool
	// ID returns the flat identifier of the pin.
	ID() uint
}

// LocalNumber returns the GPIO number of p within its chip.
func LocalNumber(p Pin) (int, error) {
	if !p.IsExternal() {
		return 0, ErrNotExternal
	}
	return int(p.ID() % GPIOsPerChip), nil
}

// ChipIndex returns the index of the chip p is attached to.
func ChipIndex(p Pin) (int, error) {
	if !p.IsExternal() {
		return 0, ErrNotExternal
	}
	return int(p.ID() / GPIOsPerChip), nil
}

// FlatID returns the flat identifier of GPIO number on chip.
func FlatID(chip, number int) uint {
	return uint(chip*GPIOsPerChip + number)
}

// Native adapts a host GPIO to Pin. It is never external.
type Native struct {
	gpio.PinIO
}

// IsExternal implements Pin.
func (n Native) IsExternal() bool {
	return false
}

// ID implements Pin. It is the host GPIO number.
func (n Native) ID() uint {
	if num := n.Number(); num > 0 {
		return uint(num)
	}
	return 0
}

var _ Pin = Native{}
