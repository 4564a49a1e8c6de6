// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hostbind exposes the expander and the tick sampler to a script
// host under stable function names.
//
// Arguments arrive as text, the way a command line or a script interpreter
// hands them over, and are converted and checked before the call is
// forwarded. Integers accept the Go prefixes (0x, 0b, 0o) and a sign, so that
// out of range values reach the range checks of the expander.
package hostbind

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/GermanBionicSystems/tcaio/pinmap"
	"github.com/GermanBionicSystems/tcaio/tca"
	"github.com/GermanBionicSystems/tcaio/ticktimer"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

type function struct {
	args []string
	call func(m *Module, args []string) (string, error)
}

// functions is filled at init time; optional groups add themselves from
// build tagged files.
var functions = map[string]function{
	"get_number": {[]string{"pin"}, func(m *Module, a []string) (string, error) {
		p, err := m.pin(a[0])
		if err != nil {
			return "", err
		}
		n, err := m.Expander.PinNumber(p)
		return itoa(n, err)
	}},
	"get_chip": {[]string{"pin"}, func(m *Module, a []string) (string, error) {
		p, err := m.pin(a[0])
		if err != nil {
			return "", err
		}
		c, err := m.Expander.PinChip(p)
		return itoa(c, err)
	}},
	"change_output_mask":   {maskArgs, changeMask((*tca.Expander).ChangeOutputMask)},
	"change_config_mask":   {maskArgs, changeMask((*tca.Expander).ChangeConfigMask)},
	"change_polarity_mask": {maskArgs, changeMask((*tca.Expander).ChangePolarityMask)},
	"start": {nil, func(m *Module, a []string) (string, error) {
		if err := m.Sampler.Start(); err != nil {
			return "", fmt.Errorf("%w: %w", tca.ErrRuntime, err)
		}
		return "", nil
	}},
	"stop": {nil, func(m *Module, a []string) (string, error) {
		m.Sampler.Stop()
		return "", nil
	}},
	"poll": {nil, func(m *Module, a []string) (string, error) {
		m.Sampler.Poll()
		return "", nil
	}},
	"measure": {[]string{"n_ticks"}, func(m *Module, a []string) (string, error) {
		n, err := parseInt64("n_ticks", a[0])
		if err != nil {
			return "", err
		}
		if n < 0 || n > math.MaxUint32 {
			return "", fmt.Errorf("%w: n_ticks only supports 32 bits", tca.ErrValue)
		}
		m.Sampler.Measure(uint32(n))
		return "", nil
	}},
}

var maskArgs = []string{"chip", "mask", "state"}

// Module binds an expander and a sampler.
type Module struct {
	Expander *tca.Expander
	Sampler  *ticktimer.Sampler
}

// Names returns the sorted function names compiled in.
func Names() []string {
	names := make([]string, 0, len(functions))
	for n := range functions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Usage returns the argument names of function name.
func Usage(name string) (string, bool) {
	f, ok := functions[name]
	if !ok {
		return "", false
	}
	s := name + "("
	for i, a := range f.args {
		if i > 0 {
			s += ", "
		}
		s += a
	}
	return s + ")", true
}

// Call runs function name with args and returns its result as text; the
// result is empty for functions without a return value.
func (m *Module) Call(name string, args ...string) (string, error) {
	f, ok := functions[name]
	if !ok {
		return "", fmt.Errorf("%w: no function %q", tca.ErrInvalidArgument, name)
	}
	if len(args) != len(f.args) {
		return "", fmt.Errorf("%w: %s takes %d arguments, %d given", tca.ErrInvalidArgument, name, len(f.args), len(args))
	}
	return f.call(m, args)
}

// pin resolves a pin by name: expander pins first, then host pins.
func (m *Module) pin(name string) (pinmap.Pin, error) {
	if p, ok := m.Expander.PinByName(name); ok {
		return p, nil
	}
	if p := gpioreg.ByName(name); p != nil {
		return pinmap.Native{PinIO: p}, nil
	}
	return nil, fmt.Errorf("%w: unknown pin %q", tca.ErrInvalidArgument, name)
}

func changeMask(fn func(e *tca.Expander, chip, mask, state int) error) func(m *Module, a []string) (string, error) {
	return func(m *Module, a []string) (string, error) {
		var v [3]int
		for i := range v {
			n, err := parseInt(maskArgs[i], a[i])
			if err != nil {
				return "", err
			}
			v[i] = n
		}
		return "", fn(m.Expander, v[0], v[1], v[2])
	}
}

func chipFunc(fn func(e *tca.Expander, chip int) (uint16, error)) func(m *Module, a []string) (string, error) {
	return func(m *Module, a []string) (string, error) {
		chip, err := parseInt("chip", a[0])
		if err != nil {
			return "", err
		}
		v, err := fn(m.Expander, chip)
		return itoa(int(v), err)
	}
}

func parseInt64(name, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, not %q", tca.ErrInvalidArgument, name, s)
	}
	return n, nil
}

func parseInt(name, s string) (int, error) {
	n, err := parseInt64(name, s)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt || n > math.MaxInt {
		return 0, fmt.Errorf("%w: %s does not fit an int", tca.ErrValue, name)
	}
	return int(n), nil
}

func itoa(n int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
