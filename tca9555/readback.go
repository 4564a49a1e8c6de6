// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tca9555_noreadback

package tca9555

// The Read methods always go to the device and leave the shadow registers
// untouched, so they show changes made by anything else on the bus.

// ReadInput reads the input port register.
func (d *Dev) ReadInput() (uint16, error) {
	return d.input.readRegister()
}

// ReadOutput reads the output port register.
func (d *Dev) ReadOutput() (uint16, error) {
	return d.output.readRegister()
}

// ReadConfig reads the configuration register.
func (d *Dev) ReadConfig() (uint16, error) {
	return d.config.readRegister()
}

// ReadPolarity reads the polarity inversion register.
func (d *Dev) ReadPolarity() (uint16, error) {
	return d.polarity.readRegister()
}
