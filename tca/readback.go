// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tca9555_noreadback

package tca

import "github.com/GermanBionicSystems/tcaio/tca9555"

// ReadInput reads the input register of chip from the device.
func (e *Expander) ReadInput(chip int) (uint16, error) {
	return e.read(chip, (*tca9555.Dev).ReadInput)
}

// ReadOutput reads the output register of chip from the device.
func (e *Expander) ReadOutput(chip int) (uint16, error) {
	return e.read(chip, (*tca9555.Dev).ReadOutput)
}

// ReadConfig reads the configuration register of chip from the device.
func (e *Expander) ReadConfig(chip int) (uint16, error) {
	return e.read(chip, (*tca9555.Dev).ReadConfig)
}

// ReadPolarity reads the polarity register of chip from the device.
func (e *Expander) ReadPolarity(chip int) (uint16, error) {
	return e.read(chip, (*tca9555.Dev).ReadPolarity)
}

func (e *Expander) read(chip int, fn func(*tca9555.Dev) (uint16, error)) (uint16, error) {
	if err := checkChip(chip); err != nil {
		return 0, err
	}
	return fn(e.chips[chip])
}
