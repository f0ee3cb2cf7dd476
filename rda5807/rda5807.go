// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rda5807

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// I2CAddr is the I²C address of the RDA5807's random-access register map.
const I2CAddr uint16 = 0x11

// The FM band covered by the widest band setting of the chip. SetFrequency
// rejects anything outside this range.
const (
	MinFrequency = 76 * physic.MegaHertz
	MaxFrequency = 108 * physic.MegaHertz
)

var (
	// ErrDeviceNotFound is returned by NewI2C when the chip identity check
	// fails. It is fatal: the device at the given address is not an RDA5807.
	ErrDeviceNotFound = errors.New("rda5807: chip not recognized")

	// ErrFrequencyRange is returned when a requested frequency falls outside
	// [MinFrequency, MaxFrequency].
	ErrFrequencyRange = errors.New("rda5807: frequency out of range")

	// ErrInvalidSetting is returned when a control value is not one the chip
	// can represent, before any bus traffic happens.
	ErrInvalidSetting = errors.New("rda5807: invalid setting")
)

// MaxVolume is the highest DAC volume level.
const MaxVolume = 15

// Deemphasis selects the FM de-emphasis time constant.
type Deemphasis uint8

const (
	// Deemphasis75us is the 75 µs curve used in the Americas and South Korea.
	Deemphasis75us Deemphasis = iota
	// Deemphasis50us is the 50 µs curve used in the rest of the world.
	Deemphasis50us
)

// SeekDirection sets which way an autonomous seek scans the band.
type SeekDirection uint8

const (
	SeekDown SeekDirection = iota
	SeekUp
)

// SeekMode sets what a seek does when it reaches the band limit.
type SeekMode uint8

const (
	// SeekWrap continues the seek from the opposite band edge.
	SeekWrap SeekMode = iota
	// SeekStopAtLimit stops the seek at the band edge and reports failure.
	SeekStopAtLimit
)

// Status is a point-in-time decode of the chip's result registers. It is
// constructed fresh on every call to Dev.Status and never cached.
type Status struct {
	// SeekComplete reports that the last seek or tune operation finished.
	SeekComplete bool
	// SeekFailed reports that the last seek hit the band limit without
	// finding a station.
	SeekFailed bool
	// StereoKnown is true only when a seek/tune completed cleanly; the chip's
	// stereo indication is unreliable at any other time. When false, Stereo
	// is meaningless and both reception modes should be assumed possible.
	StereoKnown bool
	// Stereo reports a stereo pilot, valid only when StereoKnown.
	Stereo bool
	// RSSI is the received signal strength, 0 to 127.
	RSSI uint8
}

// Dev is a handle to an RDA5807 tuner.
type Dev struct {
	c *i2c.Dev

	// Guards a full read-modify-write cycle, or both reads of a status
	// query. A register update is two bus transactions; without the lock a
	// concurrent update to the same register could be silently lost.
	mu sync.Mutex
}

// NewI2C opens an RDA5807 on the given bus.
//
// The identity register is read and its high byte checked against the fixed
// family ID before anything else; a mismatch returns ErrDeviceNotFound and the
// device is not brought into service.
func NewI2C(b i2c.Bus, addr uint16) (*Dev, error) {
	d := &Dev{c: &i2c.Dev{Bus: b, Addr: addr}}
	id, err := d.readReg(regChipID)
	if err != nil {
		return nil, fmt.Errorf("rda5807: reading chip ID: %w", err)
	}
	if id&0xFF00 != chipIDHigh {
		return nil, fmt.Errorf("%w: expected 58xx, got %04X", ErrDeviceNotFound, id)
	}
	return d, nil
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("rda5807: %s", d.c.String())
}

// Halt puts the chip in standby. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.SetEnabled(false)
}

// SetEnabled powers the receiver up or puts it in standby. Register contents
// survive standby, so the previous tuning and volume apply again on wake.
func (d *Dev) SetEnabled(enabled bool) error {
	var val uint16
	if enabled {
		val = ctrlEnable
	}
	return d.updateReg(regCtrl, ctrlEnable, val)
}

// SetMuted mutes or unmutes the audio output. Only the mute bit is touched;
// the chip stays powered either way. See tuner.Radio for a policy that also
// drops power while muted.
func (d *Dev) SetMuted(muted bool) error {
	// The hardware bit has inverted sense: DMUTE set means mute disabled.
	var val uint16
	if !muted {
		val = ctrlDMute
	}
	return d.updateReg(regCtrl, ctrlDMute, val)
}

// SetVolume sets the DAC output level, 0 (lowest) to MaxVolume. The volume
// field shares its register with the seek threshold, so the update is masked
// to the DAC bits only.
func (d *Dev) SetVolume(level uint8) error {
	if level > MaxVolume {
		return fmt.Errorf("%w: volume %d, want 0-%d", ErrInvalidSetting, level, MaxVolume)
	}
	return d.updateReg(regVolume, volumeMaskDAC, uint16(level)<<volumeShiftDAC)
}

// SetDeemphasis selects the de-emphasis time constant.
func (d *Dev) SetDeemphasis(de Deemphasis) error {
	var val uint16
	switch de {
	case Deemphasis75us:
	case Deemphasis50us:
		val = iocfgDeemphasis50us
	default:
		return fmt.Errorf("%w: de-emphasis %d", ErrInvalidSetting, de)
	}
	return d.updateReg(regIOCfg, iocfgDeemphasis50us, val)
}

// SetForceMono forces mono reception regardless of the stereo pilot.
func (d *Dev) SetForceMono(mono bool) error {
	var val uint16
	if mono {
		val = ctrlMono
	}
	return d.updateReg(regCtrl, ctrlMono, val)
}

// SetBassBoost enables the chip's bass boost filter.
func (d *Dev) SetBassBoost(boost bool) error {
	var val uint16
	if boost {
		val = ctrlBass
	}
	return d.updateReg(regCtrl, ctrlBass, val)
}

// SetFrequency starts tuning to f, rounded to the nearest 50 kHz channel.
//
// Tuning is asynchronous on the chip: this call only starts it. Completion is
// observed through Status, not awaited here. The band, spacing, channel and
// tune trigger fields are written in a single masked update so the chip never
// sees a partially updated channel register.
func (d *Dev) SetFrequency(f physic.Frequency) error {
	if f < MinFrequency || f > MaxFrequency {
		return fmt.Errorf("%w: %s", ErrFrequencyRange, f)
	}
	mask := chanMaskBand | chanMaskSpace | chanMaskChannel | chanTune
	val := chanBandWide<<chanShiftBand |
		chanSpace50kHz<<chanShiftSpace |
		channelIndex(int64(f/physic.KiloHertz))<<chanShiftChannel |
		chanTune
	return d.updateReg(regChan, mask, val)
}

// channelIndex converts a kHz frequency to a 10-bit channel offset from the
// low band edge in 50 kHz steps, rounding half up. The rounding rule decides
// which channel a frequency between two steps lands on, so keep it exact.
func channelIndex(freqKHz int64) uint16 {
	return uint16((freqKHz - chanBandEdgeKHz + chanSpacingKHz/2) / chanSpacingKHz)
}

// StartSeek starts an autonomous scan for the next receivable station.
//
// The chip seeks on its own; poll Status for SeekComplete or SeekFailed. The
// enable bit is not checked first: a chip in standby simply ignores the seek
// trigger.
func (d *Dev) StartSeek(dir SeekDirection, mode SeekMode) error {
	val := ctrlSeek
	switch dir {
	case SeekDown:
	case SeekUp:
		val |= ctrlSeekUp
	default:
		return fmt.Errorf("%w: seek direction %d", ErrInvalidSetting, dir)
	}
	switch mode {
	case SeekWrap:
	case SeekStopAtLimit:
		val |= ctrlSeekMode
	default:
		return fmt.Errorf("%w: seek mode %d", ErrInvalidSetting, mode)
	}
	return d.updateReg(regCtrl, ctrlSeek|ctrlSeekUp|ctrlSeekMode, val)
}

// Reset pulses the chip's soft reset bit, returning all registers to their
// power-on defaults. Two full update cycles; not atomic with other callers.
func (d *Dev) Reset() error {
	if err := d.updateReg(regCtrl, ctrlSoftReset, ctrlSoftReset); err != nil {
		return err
	}
	return d.updateReg(regCtrl, ctrlSoftReset, 0)
}

// Status reads and decodes the chip's result registers.
//
// The two reads happen back to back under the device lock. If either fails
// the whole query fails; no partial snapshot is returned.
func (d *Dev) Status() (Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	seek, err := d.readReg(regSeekResult)
	if err != nil {
		return Status{}, err
	}
	s := Status{
		SeekComplete: seek&seekResComplete != 0,
		SeekFailed:   seek&seekResFail != 0,
	}
	if s.SeekComplete && !s.SeekFailed {
		s.StereoKnown = true
		s.Stereo = seek&seekResStereo != 0
	}
	sig, err := d.readReg(regSignal)
	if err != nil {
		return Status{}, err
	}
	s.RSSI = uint8((sig & signalMaskRSSI) >> signalShiftRSSI)
	return s, nil
}

// updateReg is a masked read-modify-write: bits in mask take their value from
// val, every other bit is written back as read. If the read fails no write is
// attempted, so a bus fault can not clobber unrelated fields with stale data.
func (d *Dev) updateReg(reg uint8, mask, val uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	cur, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.writeReg(reg, (val&mask)|(cur&^mask))
}

// readReg selects a register with a one-byte write, then reads its 16-bit
// big-endian contents.
func (d *Dev) readReg(reg uint8) (uint16, error) {
	var buf [2]byte
	if err := d.c.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// writeReg writes a register in a single three-byte transfer.
func (d *Dev) writeReg(reg uint8, val uint16) error {
	return d.c.Tx([]byte{reg, byte(val >> 8), byte(val)}, nil)
}

var _ conn.Resource = &Dev{}
