// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca

import (
	"fmt"
	"strconv"

	"github.com/GermanBionicSystems/tcaio/pinmap"
	"github.com/GermanBionicSystems/tcaio/tca9555"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
)

// Opts holds the options of an Expander.
type Opts struct {
	// Log receives debug events. Defaults to the logrus standard logger.
	Log *logrus.Entry
}

// Expander is the set of expander chips of the board.
type Expander struct {
	chips [ChipCount]*tca9555.Dev
	pins  []*ExtPin
	log   *logrus.Entry
}

// New opens every chip of the board on bus. The chips are left as they are;
// call Reset to apply BoardDefaults.
func New(bus i2c.Bus, opts *Opts) (*Expander, error) {
	e := &Expander{}
	if opts != nil && opts.Log != nil {
		e.log = opts.Log
	} else {
		e.log = logrus.NewEntry(logrus.StandardLogger())
	}
	for i, addr := range chipAddresses {
		d, err := tca9555.New(bus, chipVariant, addr)
		if err != nil {
			_ = e.Close()
			return nil, fmt.Errorf("tca: chip %d: %w", i, err)
		}
		e.chips[i] = d
		for _, p := range d.Pins {
			e.pins = append(e.pins, &ExtPin{Pin: p, id: pinmap.FlatID(i, p.Number())})
		}
	}
	e.log.WithField("chips", ChipCount).Debug("expanders opened")
	return e, nil
}

// Close releases the pin registrations of every chip.
func (e *Expander) Close() error {
	var first error
	for _, d := range e.chips {
		if d == nil {
			continue
		}
		if err := d.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Reset writes BoardDefaults to every chip. Outputs are latched before the
// directions are set.
func (e *Expander) Reset() error {
	for i, d := range e.chips {
		s := BoardDefaults[i]
		e.log.WithFields(logrus.Fields{
			"chip":     i,
			"output":   fmt.Sprintf("%#04x", s.Output),
			"polarity": fmt.Sprintf("%#04x", s.Polarity),
			"config":   fmt.Sprintf("%#04x", s.Config),
		}).Debug("applying board defaults")
		if err := d.SetOutputPort(s.Output); err != nil {
			return err
		}
		if err := d.SetPolarityPort(s.Polarity); err != nil {
			return err
		}
		if err := d.SetConfigPort(s.Config); err != nil {
			return err
		}
	}
	return nil
}

// Dev returns the driver of chip.
func (e *Expander) Dev(chip int) (*tca9555.Dev, error) {
	if err := checkChip(chip); err != nil {
		return nil, err
	}
	return e.chips[chip], nil
}

// PinNumber returns the GPIO number of p within its chip.
func (e *Expander) PinNumber(p pinmap.Pin) (int, error) {
	n, err := pinmap.LocalNumber(p)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return n, nil
}

// PinChip returns the index of the chip p is attached to.
func (e *Expander) PinChip(p pinmap.Pin) (int, error) {
	c, err := pinmap.ChipIndex(p)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return c, nil
}

// ChangeOutputMask sets the output bits of chip selected by mask to the
// matching bits of state.
func (e *Expander) ChangeOutputMask(chip, mask, state int) error {
	return e.change(chip, mask, state, (*tca9555.Dev).ChangeOutputMask)
}

// ChangeConfigMask sets the direction bits of chip selected by mask to the
// matching bits of state. Set bits are inputs.
func (e *Expander) ChangeConfigMask(chip, mask, state int) error {
	return e.change(chip, mask, state, (*tca9555.Dev).ChangeConfigMask)
}

// ChangePolarityMask sets the input inversion bits of chip selected by mask
// to the matching bits of state.
func (e *Expander) ChangePolarityMask(chip, mask, state int) error {
	return e.change(chip, mask, state, (*tca9555.Dev).ChangePolarityMask)
}

func (e *Expander) change(chip, mask, state int, fn func(*tca9555.Dev, uint16, uint16) error) error {
	if err := checkChip(chip); err != nil {
		return err
	}
	m, err := check16("mask", mask)
	if err != nil {
		return err
	}
	s, err := check16("state", state)
	if err != nil {
		return err
	}
	return fn(e.chips[chip], m, s)
}

// Pin returns the expander pin with flat identifier id.
func (e *Expander) Pin(id uint) (*ExtPin, error) {
	if id >= uint(len(e.pins)) {
		return nil, fmt.Errorf("%w: pin can only be 0 to %d", ErrOutOfRange, len(e.pins)-1)
	}
	return e.pins[id], nil
}

// PinByName returns the expander pin called name, either its chip pin name
// or EXT<id>.
func (e *Expander) PinByName(name string) (*ExtPin, bool) {
	for _, p := range e.pins {
		if p.Name() == name || p.String() == name {
			return p, true
		}
	}
	return nil, false
}

// ExtPin is an expander pin known by its flat identifier.
type ExtPin struct {
	tca9555.Pin
	id uint
}

// IsExternal implements pinmap.Pin.
func (p *ExtPin) IsExternal() bool {
	return true
}

// ID implements pinmap.Pin.
func (p *ExtPin) ID() uint {
	return p.id
}

func (p *ExtPin) String() string {
	return "EXT" + strconv.FormatUint(uint64(p.id), 10)
}

var _ pinmap.Pin = &ExtPin{}
