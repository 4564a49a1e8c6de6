// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tca9555_noreadback

package main

import (
	"fmt"
	"time"

	"github.com/GermanBionicSystems/tcaio/bitview"
	"github.com/GermanBionicSystems/tcaio/tca"
)

func init() {
	commands["dump"] = command{"draw the registers of every chip, redrawing for -watch", dump}
}

func dump(e *env, args []string) error {
	v := bitview.New(e.out, nil)
	defer v.Halt()
	exp := e.mod.Expander
	end := time.Now().Add(e.watch)
	for {
		var rows []bitview.Row
		for chip := 0; chip < tca.ChipCount; chip++ {
			for _, r := range []struct {
				name string
				fn   func(int) (uint16, error)
			}{
				{"input", exp.ReadInput},
				{"output", exp.ReadOutput},
				{"polarity", exp.ReadPolarity},
				{"config", exp.ReadConfig},
			} {
				bits, err := r.fn(chip)
				if err != nil {
					return err
				}
				rows = append(rows, bitview.Row{Label: fmt.Sprintf("%d %s", chip, r.name), Bits: bits})
			}
		}
		if err := v.Draw(rows...); err != nil {
			return err
		}
		if !time.Now().Before(end) {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
}
