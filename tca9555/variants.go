// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tca9555

// Variant is the type denoting a specific variant of the family.
type Variant string

const (
	TCA6416  Variant = "TCA6416"  // TCA6416  16-bit I²C extender. Datasheet: https://www.ti.com/lit/gpn/tca6416
	TCA6416A Variant = "TCA6416A" // TCA6416A 16-bit I²C extender. Datasheet: https://www.ti.com/lit/gpn/tca6416a
	TCA9535  Variant = "TCA9535"  // TCA9535  16-bit I²C extender. Datasheet: https://www.ti.com/lit/gpn/tca9535
	TCA9539  Variant = "TCA9539"  // TCA9539  16-bit I²C extender. Datasheet: https://www.ti.com/lit/gpn/tca9539
	TCA9555  Variant = "TCA9555"  // TCA9555  16-bit I²C extender. Datasheet: https://www.ti.com/lit/gpn/tca9555
)

// Register pairs. Port 0 is at the even address and holds the low byte, port
// 1 follows it and holds the high byte.
const (
	regInput    uint8 = 0x00
	regOutput   uint8 = 0x02
	regPolarity uint8 = 0x04
	regConfig   uint8 = 0x06
)

type variant struct {
	addStart uint16
	addEnd   uint16
}

var variants = map[Variant]variant{
	TCA6416:  {addStart: 0x20, addEnd: 0x21},
	TCA6416A: {addStart: 0x20, addEnd: 0x21},
	TCA9535:  {addStart: 0x20, addEnd: 0x27},
	TCA9539:  {addStart: 0x74, addEnd: 0x77},
	TCA9555:  {addStart: 0x20, addEnd: 0x27},
}

// isAddrInvalid checks to see if the address is used by the chip.
func (v variant) isAddrInvalid(addr uint16) bool {
	return addr < v.addStart || v.addEnd < addr
}
