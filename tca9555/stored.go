// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tca9555_noreadback && !tca9555_nolocalmemory

package tca9555

// StoredOutput returns the shadow of the output register.
func (d *Dev) StoredOutput() uint16 {
	return d.output.stored()
}

// StoredConfig returns the shadow of the configuration register.
func (d *Dev) StoredConfig() uint16 {
	return d.config.stored()
}

// StoredPolarity returns the shadow of the polarity register.
func (d *Dev) StoredPolarity() uint16 {
	return d.polarity.stored()
}
