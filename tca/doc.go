// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tca drives the fixed set of TCA9555 expanders of a board as one
// flat pin space.
//
// The set of chips, their addresses and their power-up state are compiled in,
// see board.go. Every operation validates its arguments before touching the
// bus, so a rejected call never issues a partial write. Bus errors are
// returned as they come from the I²C driver.
//
// The read-back methods are left out when building with the
// tca9555_noreadback tag, and the stored-value methods also when building
// with tca9555_nolocalmemory.
package tca
