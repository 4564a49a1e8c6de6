// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tca9555_noreadback && !tca9555_nolocalmemory

package tca

import "github.com/GermanBionicSystems/tcaio/tca9555"

// StoredOutput returns the last output value written to chip.
func (e *Expander) StoredOutput(chip int) (uint16, error) {
	return e.stored(chip, (*tca9555.Dev).StoredOutput)
}

// StoredConfig returns the last configuration value written to chip.
func (e *Expander) StoredConfig(chip int) (uint16, error) {
	return e.stored(chip, (*tca9555.Dev).StoredConfig)
}

// StoredPolarity returns the last polarity value written to chip.
func (e *Expander) StoredPolarity(chip int) (uint16, error) {
	return e.stored(chip, (*tca9555.Dev).StoredPolarity)
}

func (e *Expander) stored(chip int, fn func(*tca9555.Dev) uint16) (uint16, error) {
	if err := checkChip(chip); err != nil {
		return 0, err
	}
	return fn(e.chips[chip]), nil
}
