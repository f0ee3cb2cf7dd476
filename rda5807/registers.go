// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rda5807

// Register addresses. The RDA5807 exposes its register file three ways on the
// I²C bus; this driver uses the random-access map at address 0x11, where every
// transaction starts with a one-byte register select.
const (
	regChipID     uint8 = 0x00 // read-only chip identity
	regCtrl       uint8 = 0x02 // power, mute, seek and clock control
	regChan       uint8 = 0x03 // channel, band, spacing, tune trigger
	regIOCfg      uint8 = 0x04 // de-emphasis and I/O configuration
	regVolume     uint8 = 0x05 // interrupt mode, seek threshold, DAC volume
	regSeekResult uint8 = 0x0A // read-only seek/tune outcome
	regSignal     uint8 = 0x0B // read-only signal quality
)

// CTRL register fields.
const (
	ctrlDHiZ      uint16 = 1 << 15 // audio output high-impedance disable
	ctrlDMute     uint16 = 1 << 14 // mute disable: set means audible
	ctrlMono      uint16 = 1 << 13 // force mono
	ctrlBass      uint16 = 1 << 12 // bass boost
	ctrlSeekUp    uint16 = 1 << 9  // seek direction: up
	ctrlSeek      uint16 = 1 << 8  // seek trigger
	ctrlSeekMode  uint16 = 1 << 7  // stop seeking at the band limit
	ctrlClockMode uint16 = 7 << 4  // reference clock selection
	ctrlSoftReset uint16 = 1 << 1
	ctrlEnable    uint16 = 1 << 0
)

// CHAN register fields.
const (
	chanShiftChannel       = 6
	chanMaskChannel uint16 = 0x3FF << chanShiftChannel
	chanTune        uint16 = 1 << 4
	chanShiftBand          = 2
	chanMaskBand    uint16 = 0x3 << chanShiftBand
	chanShiftSpace         = 0
	chanMaskSpace   uint16 = 0x3 << chanShiftSpace
)

// CHAN band and spacing encodings used by SetFrequency: the widest band
// (76-108 MHz) and the finest channel spacing (50 kHz), so every channel
// index in the full FM range is representable.
const (
	chanBandWide     uint16 = 2
	chanSpace50kHz   uint16 = 2
	chanSpacingKHz          = 50
	chanBandEdgeKHz         = 76000
)

// IOCFG register fields.
const (
	iocfgDeemphasis50us uint16 = 1 << 11 // set: 50 µs curve, clear: 75 µs
)

// Volume register fields. The DAC level shares its register with the
// interrupt mode and seek threshold fields, so it must only ever be written
// through a masked update.
const (
	volumeShiftDAC        = 0
	volumeMaskDAC  uint16 = 0xF << volumeShiftDAC
)

// SEEK_RESULT register fields.
const (
	seekResComplete uint16 = 1 << 14
	seekResFail     uint16 = 1 << 13
	seekResStereo   uint16 = 1 << 10
)

// SIGNAL register fields.
const (
	signalShiftRSSI        = 9
	signalMaskRSSI  uint16 = 0x7F << signalShiftRSSI
)

// The high byte of the CHIPID register reads 0x58 on every chip of the
// RDA5807 family.
const chipIDHigh uint16 = 0x5800
