// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tca9555test simulates TCA9555 class I²C extenders.
//
// Unlike an i2ctest.Playback, the simulation keeps the register file of each
// chip, so tests can check the behaviour of a driver instead of its exact bus
// traffic, change registers behind the driver's back and inject faults.
package tca9555test

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Register pair addresses.
const (
	Input    uint8 = 0x00
	Output   uint8 = 0x02
	Polarity uint8 = 0x04
	Config   uint8 = 0x06
)

// ErrNoDevice is returned for transactions to an address without a chip.
var ErrNoDevice = errors.New("tca9555test: no device at address")

// Chip is the state of one simulated device.
type Chip struct {
	regs [8]uint8
	ptr  uint8
	// Levels are the levels applied from outside to the pins, bit n for pin
	// n. They show in the input register for pins configured as inputs.
	Levels uint16
	// Err, when set, fails every transaction to the chip.
	Err error
}

// Sim is a simulated I²C bus with TCA9555 chips attached.
type Sim struct {
	mu    sync.Mutex
	chips map[uint16]*Chip
	count int
}

// New returns a bus with one chip at each of addrs, in the power-on state.
func New(addrs ...uint16) *Sim {
	s := &Sim{chips: map[uint16]*Chip{}}
	for _, a := range addrs {
		c := &Chip{}
		// Outputs latch high, all pins are inputs, no inversion.
		c.regs[Output], c.regs[Output+1] = 0xFF, 0xFF
		c.regs[Config], c.regs[Config+1] = 0xFF, 0xFF
		s.chips[a] = c
	}
	return s
}

func (s *Sim) String() string {
	return "tca9555test"
}

// Tx implements i2c.Bus. The first written byte selects the register, the
// following bytes are written to it; reads continue from the selected
// register. The pointer toggles within a register pair after each byte.
func (s *Sim) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	c, ok := s.chips[addr]
	if !ok {
		return fmt.Errorf("%w 0x%02x", ErrNoDevice, addr)
	}
	if c.Err != nil {
		return c.Err
	}
	if len(w) > 0 {
		c.ptr = w[0] & 7
		for _, b := range w[1:] {
			if c.ptr >= Output {
				c.regs[c.ptr] = b
			}
			c.next()
		}
	}
	for i := range r {
		r[i] = c.read(c.ptr)
		c.next()
	}
	return nil
}

// SetSpeed implements i2c.Bus.
func (s *Sim) SetSpeed(f physic.Frequency) error {
	return nil
}

// Close implements i2c.BusCloser.
func (s *Sim) Close() error {
	return nil
}

// Count returns the number of transactions seen on the bus.
func (s *Sim) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Chip returns the chip at addr, or nil.
func (s *Sim) Chip(addr uint16) *Chip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chips[addr]
}

// Poke sets the register pair reg of the chip at addr without going through
// the bus, like another bus master would.
func (s *Sim) Poke(addr uint16, reg uint8, v uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.chips[addr]
	c.regs[reg&6] = uint8(v)
	c.regs[reg&6+1] = uint8(v >> 8)
}

// Peek returns the register pair reg of the chip at addr. For Input it
// returns what a read of the input register would.
func (s *Sim) Peek(addr uint16, reg uint8) uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.chips[addr]
	return uint16(c.read(reg&6+1))<<8 | uint16(c.read(reg&6))
}

// SetLevels sets the externally applied pin levels of the chip at addr.
func (s *Sim) SetLevels(addr uint16, levels uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chips[addr].Levels = levels
}

// Fail makes every transaction to the chip at addr fail with err; nil
// restores it.
func (s *Sim) Fail(addr uint16, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chips[addr].Err = err
}

func (c *Chip) next() {
	c.ptr = c.ptr&^1 | (c.ptr+1)&1
}

// read returns register reg. The input ports mirror the pin levels, which are
// the output latch for outputs, inverted per the polarity register.
func (c *Chip) read(reg uint8) uint8 {
	if reg >= Output {
		return c.regs[reg]
	}
	shift := 8 * uint(reg)
	cfg := c.regs[Config+reg]
	level := uint8(c.Levels >> shift)
	pins := level&cfg | c.regs[Output+reg]&^cfg
	return pins ^ c.regs[Polarity+reg]
}

var _ i2c.BusCloser = &Sim{}
