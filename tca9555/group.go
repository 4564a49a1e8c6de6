// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9555

import (
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

// The internal structure for a group of pins.
type pinGroup struct {
	dev         *Dev
	pins        []*portpin
	defaultMask gpio.GPIOValue
}

// Group returns a gpio.Group that is made up of the specified GPIO numbers.
// Bit n of the group values maps to pins[n]. It returns nil if a number is
// not a GPIO of the chip or appears twice.
func (d *Dev) Group(pins []int) gpio.Group {
	if len(pins) > len(d.Pins) {
		return nil
	}
	grouppins := make([]*portpin, len(pins))
	var seen uint16
	for ix, number := range pins {
		if number < 0 || number >= len(d.Pins) || seen&(1<<uint(number)) != 0 {
			return nil
		}
		seen |= 1 << uint(number)
		pp, ok := d.Pins[number].(*portpin)
		if !ok {
			return nil
		}
		grouppins[ix] = pp
	}
	defMask := gpio.GPIOValue((1 << len(pins)) - 1)
	return &pinGroup{dev: d, pins: grouppins, defaultMask: defMask}
}

// Pins returns the set of pin.Pin that make up that group.
func (pg *pinGroup) Pins() []pin.Pin {
	pins := make([]pin.Pin, len(pg.pins))
	for ix, p := range pg.pins {
		pins[ix] = p
	}
	return pins
}

// Given the offset within the group, return the corresponding GPIO pin.
func (pg *pinGroup) ByOffset(offset int) pin.Pin {
	if offset < 0 || offset >= len(pg.pins) {
		return nil
	}
	return pg.pins[offset]
}

// Given the specific name of a pin, return it. If it can't be found, nil is
// returned.
func (pg *pinGroup) ByName(name string) pin.Pin {
	for _, p := range pg.pins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Given the GPIO pin number, return that pin from the set.
func (pg *pinGroup) ByNumber(number int) pin.Pin {
	for _, p := range pg.pins {
		if p.Number() == number {
			return p
		}
	}
	return nil
}

// chipMask converts a group relative mask to a chip mask.
func (pg *pinGroup) chipMask(mask gpio.GPIOValue) uint16 {
	var m uint16
	for bit, p := range pg.pins {
		if mask&(1<<bit) != 0 {
			m |= 1 << p.pinbit
		}
	}
	return m
}

func (pg *pinGroup) effectiveMask(mask gpio.GPIOValue) gpio.GPIOValue {
	if mask == 0 {
		return pg.defaultMask
	}
	return mask & pg.defaultMask
}

// Out writes value to the pins of the group selected by mask. If mask is 0,
// the default mask of all pins in the group is used. Pins not yet configured
// as outputs are switched after their level is latched.
func (pg *pinGroup) Out(value, mask gpio.GPIOValue) error {
	mask = pg.effectiveMask(mask)
	wrMask := pg.chipMask(mask)
	wr := pg.chipMask(value & mask)

	if err := pg.dev.output.update(wrMask, wr); err != nil {
		return err
	}
	inputs, err := pg.dev.config.readValue(true)
	if err != nil {
		return err
	}
	if inputs&wrMask != 0 {
		return pg.dev.config.update(wrMask, 0)
	}
	return nil
}

// Read returns the state of the pins of the group selected by mask. Pins
// that are not inputs are switched to input first.
func (pg *pinGroup) Read(mask gpio.GPIOValue) (result gpio.GPIOValue, err error) {
	mask = pg.effectiveMask(mask)
	rmask := pg.chipMask(mask)

	inputs, err := pg.dev.config.readValue(true)
	if err != nil {
		return 0, err
	}
	if inputs&rmask != rmask {
		if err = pg.dev.config.update(rmask, rmask); err != nil {
			return 0, err
		}
	}
	v, err := pg.dev.input.readValue(false)
	if err != nil {
		return 0, err
	}
	for ix, p := range pg.pins {
		if mask&(1<<ix) != 0 && v&(1<<p.pinbit) != 0 {
			result |= 1 << ix
		}
	}
	return result, nil
}

// WaitForEdge is not supported, the chip interrupt line is not part of the
// I²C bus.
func (pg *pinGroup) WaitForEdge(timeout time.Duration) (number int, edge gpio.Edge, err error) {
	return -1, gpio.NoEdge, gpio.ErrGroupFeatureNotImplemented
}

// Halt implements conn.Resource.
func (pg *pinGroup) Halt() error {
	return nil
}

// String returns the device name and configured pins for the group.
func (pg *pinGroup) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - [ ", pg.dev)
	for _, p := range pg.pins {
		fmt.Fprintf(&b, "%d ", p.Number())
	}
	b.WriteString("]")
	return b.String()
}

var _ gpio.Group = &pinGroup{}
