// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9555

import (
	"errors"
	"strconv"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// Pin extends gpio.PinIO interface with features supported by tca9555 devices.
type Pin interface {
	gpio.PinIO
	// SetPolarityInverted if set to true, the input register bit reflects the
	// inverted logic state of the input pin.
	SetPolarityInverted(p bool) error
	// IsPolarityInverted returns true if the value of the input pin reflects
	// inverted logic state.
	IsPolarityInverted() (bool, error)
}

type portpin struct {
	dev    *Dev
	pinbit uint8
}

func (p *portpin) String() string {
	return p.Name()
}

func (p *portpin) Halt() error {
	// To halt all drive, set to high-impedance input
	return p.In(gpio.Float, gpio.NoEdge)
}

// Name returns the pin name as <device>_P<port>_<bit>.
func (p *portpin) Name() string {
	return p.dev.name + "_P" + strconv.Itoa(int(p.pinbit/8)) + "_" + strconv.Itoa(int(p.pinbit%8))
}

// Number returns the GPIO number within the chip, 0 to 15.
func (p *portpin) Number() int {
	return int(p.pinbit)
}

func (p *portpin) Function() string {
	return string(p.Func())
}

func (p *portpin) In(pull gpio.Pull, edge gpio.Edge) error {
	switch pull {
	case gpio.PullDown:
		return errors.New("tca9555: PullDown is not supported")
	case gpio.PullUp:
		return errors.New("tca9555: PullUp is not supported")
	case gpio.Float, gpio.PullNoChange:
		// Do nothing, supported.
	}

	// The INT line is not wired through I²C.
	if edge != gpio.NoEdge {
		return errors.New("tca9555: edge detection not supported")
	}

	return p.dev.config.setBit(p.pinbit, true)
}

// Read returns the output latch for an output pin and the input register
// for an input pin.
func (p *portpin) Read() gpio.Level {
	isInput, err := p.dev.config.getBit(p.pinbit, true)
	if err != nil {
		return gpio.Low
	}
	var v bool
	if isInput {
		v, _ = p.dev.input.getBit(p.pinbit, false)
	} else {
		v, _ = p.dev.output.getBit(p.pinbit, true)
	}
	return gpio.Level(v)
}

func (p *portpin) WaitForEdge(timeout time.Duration) bool {
	return false
}

func (p *portpin) Pull() gpio.Pull {
	return gpio.Float
}

func (p *portpin) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Out latches the level first and then switches the pin to output, so the
// pin never drives a stale level.
func (p *portpin) Out(l gpio.Level) error {
	if err := p.dev.output.setBit(p.pinbit, l == gpio.High); err != nil {
		return err
	}
	return p.dev.config.setBit(p.pinbit, false)
}

func (p *portpin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.New("tca9555: PWM is not supported")
}

func (p *portpin) Func() pin.Func {
	v, _ := p.dev.config.getBit(p.pinbit, true)
	if v {
		return gpio.IN
	}
	return gpio.OUT
}

func (p *portpin) SupportedFuncs() []pin.Func {
	return supportedFuncs[:]
}

func (p *portpin) SetFunc(f pin.Func) error {
	var v bool
	switch f {
	case gpio.IN:
		v = true
	case gpio.OUT:
		v = false
	default:
		return errors.New("tca9555: Function not supported: " + string(f))
	}
	return p.dev.config.setBit(p.pinbit, v)
}

func (p *portpin) SetPolarityInverted(pol bool) error {
	return p.dev.polarity.setBit(p.pinbit, pol)
}

func (p *portpin) IsPolarityInverted() (bool, error) {
	return p.dev.polarity.getBit(p.pinbit, true)
}

var supportedFuncs = [...]pin.Func{gpio.IN, gpio.OUT}

var _ Pin = &portpin{}
var _ pin.PinFunc = &portpin{}
