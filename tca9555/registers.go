// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9555

import "periph.io/x/conn/v3/i2c"

// bank is a pair of 8-bit registers accessed as one 16-bit value. The chip
// auto-increments within the pair, so both halves move in one transaction.
type bank struct {
	i2c     *i2c.Dev
	address uint8
	got     bool
	// cache holds the last value written or loaded; [0] is port 0 (low
	// byte), [1] is port 1 (high byte).
	cache [2]uint8
}

func newBank(i2c *i2c.Dev, address uint8) bank {
	return bank{
		i2c:     i2c,
		address: address,
	}
}

func (b *bank) readRegister() (uint16, error) {
	rx := make([]byte, 2)
	if err := b.i2c.Tx([]byte{b.address}, rx); err != nil {
		return 0, err
	}
	return uint16(rx[1])<<8 | uint16(rx[0]), nil
}

func (b *bank) writeRegister(value uint16) error {
	return b.i2c.Tx([]byte{b.address, uint8(value), uint8(value >> 8)}, nil)
}

// load reads the device register into the shadow.
func (b *bank) load() error {
	v, err := b.readRegister()
	if err != nil {
		return err
	}
	b.set(v)
	return nil
}

func (b *bank) set(value uint16) {
	b.got = true
	b.cache[0] = uint8(value)
	b.cache[1] = uint8(value >> 8)
}

// stored returns the shadow value, without bus access.
func (b *bank) stored() uint16 {
	return uint16(b.cache[1])<<8 | uint16(b.cache[0])
}

// readValue returns the shadow when cached is set and local memory is built
// in, otherwise it reads the device. A device read never touches the shadow.
func (b *bank) readValue(cached bool) (uint16, error) {
	if cached && localMemory && b.got {
		return b.stored(), nil
	}
	return b.readRegister()
}

func (b *bank) writeValue(value uint16) error {
	if err := b.writeRegister(value); err != nil {
		return err
	}
	b.set(value)
	return nil
}

// update replaces the bits selected by mask with the matching bits of state.
// The whole register is written back so the device matches the shadow
// afterwards, even if it had been changed behind our back.
func (b *bank) update(mask, state uint16) error {
	v, err := b.readValue(true)
	if err != nil {
		return err
	}
	return b.writeValue(v&^mask | state&mask)
}

func (b *bank) setBit(bit uint8, value bool) error {
	var state uint16
	if value {
		state = 1 << bit
	}
	return b.update(1<<bit, state)
}

func (b *bank) getBit(bit uint8, cached bool) (bool, error) {
	v, err := b.readValue(cached)
	return (v & (1 << bit)) != 0, err
}
