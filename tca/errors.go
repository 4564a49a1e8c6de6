// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds. Returned errors wrap one of them, test with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
	ErrValue           = errors.New("value error")
	ErrRuntime         = errors.New("runtime error")
)

func checkChip(chip int) error {
	if chip < 0 || chip >= ChipCount {
		return fmt.Errorf("%w: chip can only be 0 to %d", ErrOutOfRange, ChipCount-1)
	}
	return nil
}

func check16(name string, v int) (uint16, error) {
	if v < 0 || v > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %s only supports 16 bits", ErrValue, name)
	}
	return uint16(v), nil
}
