// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bitview draws 16 bit registers to a terminal as rows of colored
// blocks, one per pin, using ANSI color codes.
//
// Bit 15 is drawn first so a row reads like the hexadecimal value, with a gap
// between port 1 and port 0.
package bitview

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options of a Dev.
type Opts struct {
	Palette *ansi256.Palette
	// On and Off are the colors of set and cleared bits. The zero value
	// selects green and dark grey.
	On  color.NRGBA
	Off color.NRGBA

	_ struct{}
}

// Row is one register to draw.
type Row struct {
	Label string
	Bits  uint16
}

// Dev writes rows of bits to a terminal.
type Dev struct {
	w       io.Writer
	on, off string

	buf bytes.Buffer
}

// New returns a Dev that writes to w, or to the console when w is nil.
func New(w io.Writer, opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	on, off := opts.On, opts.Off
	if on == (color.NRGBA{}) {
		on = color.NRGBA{0, 255, 0, 255}
	}
	if off == (color.NRGBA{}) {
		off = color.NRGBA{48, 48, 48, 255}
	}
	return &Dev{w: w, on: p.Block(on), off: p.Block(off)}
}

func (d *Dev) String() string {
	return "BitView"
}

// Halt resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m"))
	return err
}

// Draw writes one line per row.
func (d *Dev) Draw(rows ...Row) error {
	d.buf.Reset()
	width := 0
	for _, r := range rows {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}
	for _, r := range rows {
		fmt.Fprintf(&d.buf, "\033[0m%-*s ", width, r.Label)
		for i := 15; i >= 0; i-- {
			if i == 7 {
				_ = d.buf.WriteByte(' ')
			}
			if r.Bits&(1<<uint(i)) != 0 {
				_, _ = d.buf.WriteString(d.on)
			} else {
				_, _ = d.buf.WriteString(d.off)
			}
		}
		fmt.Fprintf(&d.buf, "\033[0m 0x%04X\n", r.Bits)
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ fmt.Stringer = &Dev{}
