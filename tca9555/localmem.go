// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !tca9555_nolocalmemory

package tca9555

// localMemory makes read-modify-write cycles start from the shadow registers
// instead of reading the device first.
const localMemory = true
