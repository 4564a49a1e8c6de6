// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tca9555 provides an interface to the Texas Instruments 16-bit I²C
// GPIO extenders sharing the TCA9555 register map.
//
// The following variants are supported:
//
//   - TCA6416 - addresses: 0x20, 0x21
//   - TCA6416A - addresses: 0x20, 0x21
//   - TCA9535 - addresses: 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27
//   - TCA9539 - address: 0x74, 0x75, 0x76, 0x77
//   - TCA9555 - addresses: 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27
//
// The output, configuration and polarity registers are shadowed in memory so
// that masked updates only cost a single write. Build with the
// tca9555_nolocalmemory tag to read the device before every update instead,
// and with tca9555_noreadback to leave out the register read-back methods.
package tca9555

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
)

// Dev is a TCA9555 class I²C extender.
//
// Bit n of every 16-bit value maps to pin n: port 0 is the low byte and port
// 1 the high byte. Dev is not safe for concurrent use.
type Dev struct {
	Pins []Pin // Pins holds the 16 pins ordered by GPIO number.

	name     string
	i2c      i2c.Dev
	input    bank
	output   bank
	polarity bank
	config   bank

	registered []string
}

// New returns a device object that communicates over I²C to a TCA9555 class
// device. The output, polarity and configuration registers are read once to
// seed the shadow state.
func New(bus i2c.Bus, variant Variant, addr uint16) (*Dev, error) {
	v, found := variants[variant]
	if !found {
		return nil, fmt.Errorf("%s: Unsupported variant", string(variant))
	}
	if v.isAddrInvalid(addr) {
		return nil, fmt.Errorf("tca9555: address not supported by device type %s", string(variant))
	}

	d := &Dev{
		name: string(variant) + "_" + strconv.FormatInt(int64(addr), 16),
		i2c:  i2c.Dev{Bus: bus, Addr: addr},
	}
	d.input = newBank(&d.i2c, regInput)
	d.output = newBank(&d.i2c, regOutput)
	d.polarity = newBank(&d.i2c, regPolarity)
	d.config = newBank(&d.i2c, regConfig)

	for _, b := range []*bank{&d.output, &d.polarity, &d.config} {
		if err := b.load(); err != nil {
			return nil, err
		}
	}

	d.Pins = make([]Pin, 16)
	for i := range d.Pins {
		p := &portpin{dev: d, pinbit: uint8(i)}
		d.Pins[i] = p
		// Ignore registration failure.
		if err := gpioreg.Register(p); err == nil {
			d.registered = append(d.registered, p.Name())
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	return d.name
}

// ChangeOutputMask sets the output latch bits selected by mask to the
// matching bits of state.
func (d *Dev) ChangeOutputMask(mask, state uint16) error {
	return d.output.update(mask, state)
}

// ChangeConfigMask sets the direction bits selected by mask to the matching
// bits of state. A set bit makes the pin an input.
func (d *Dev) ChangeConfigMask(mask, state uint16) error {
	return d.config.update(mask, state)
}

// ChangePolarityMask sets the input inversion bits selected by mask to the
// matching bits of state.
func (d *Dev) ChangePolarityMask(mask, state uint16) error {
	return d.polarity.update(mask, state)
}

// SetOutputPort writes the whole output register.
func (d *Dev) SetOutputPort(v uint16) error {
	return d.output.writeValue(v)
}

// SetConfigPort writes the whole configuration register.
func (d *Dev) SetConfigPort(v uint16) error {
	return d.config.writeValue(v)
}

// SetPolarityPort writes the whole polarity register.
func (d *Dev) SetPolarityPort(v uint16) error {
	return d.polarity.writeValue(v)
}

// Close removes any registration to the device.
func (d *Dev) Close() error {
	for len(d.registered) > 0 {
		if err := gpioreg.Unregister(d.registered[0]); err != nil {
			return err
		}
		d.registered = d.registered[1:]
	}
	return nil
}
