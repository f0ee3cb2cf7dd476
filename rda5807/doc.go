// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rda5807 controls an RDA5807 FM tuner chip over I²C.
//
// The chip exposes its register file at three I²C addresses; this driver uses
// the random-access map at address 0x11 (rda5807.I2CAddr), where each
// transaction selects a register by number. Note that while the RDA5807 is
// register compatible with the TEA5767 at address 0x60, its native register
// map differs from the RDA5800 in several essential places.
//
// All control operations are masked read-modify-write cycles against the live
// device. The driver keeps no copy of register contents: the chip can change
// its own registers (an autonomous seek updates the channel readback), so the
// hardware is the only source of truth.
//
// Datasheet: http://www.rdamicro.com/uploadfile/pdf/RDA5807M_datasheet_v1.pdf
package rda5807
