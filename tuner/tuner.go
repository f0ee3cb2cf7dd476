// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tuner presents an rda5807 device as a small set of named radio
// controls, the way a media framework would expose it: mute, volume,
// de-emphasis, a frequency, and a read-only reception report.
//
// The package owns two policies the raw driver deliberately does not have:
// muting also powers the chip down to save energy, and resuming from suspend
// re-enables the chip only if it was not muted. Nothing else is kept in
// process; every query goes to the hardware.
package tuner

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/radio/rda5807"
)

// Control identifies one of the named settings accepted by Set.
type Control uint8

const (
	// ControlMute mutes (1) or unmutes (0) the audio output.
	ControlMute Control = iota
	// ControlVolume sets the output level, 0 to rda5807.MaxVolume.
	ControlVolume
	// ControlDeemphasis selects the de-emphasis curve, as an
	// rda5807.Deemphasis value.
	ControlDeemphasis
)

// ErrUnknownControl is returned by Set for a control it does not support.
var ErrUnknownControl = errors.New("tuner: unknown control")

// Report is a reception snapshot scaled for presentation.
type Report struct {
	// Tuned reports that the last tune or seek finished on a station.
	Tuned bool
	// SeekFailed reports that the last seek gave up at the band limit.
	SeekFailed bool
	// Stereo and Mono report which reception modes are possible. While a
	// seek or tune is still running the chip's stereo indication is
	// unreliable, and both are reported true.
	Stereo bool
	Mono   bool
	// Signal is the received signal strength scaled to the full 16-bit
	// range (the chip's 7-bit indicator left-justified).
	Signal uint16
}

// Radio wraps an RDA5807 with the named-control surface.
type Radio struct {
	dev *rda5807.Dev

	mu    sync.Mutex
	muted bool
}

// New returns a Radio driving dev. The device is assumed to be in its
// power-on state: muted, disabled.
func New(dev *rda5807.Dev) *Radio {
	return &Radio{dev: dev, muted: true}
}

// Set applies a named control value.
func (r *Radio) Set(c Control, value int) error {
	switch c {
	case ControlMute:
		return r.SetMuted(value != 0)
	case ControlVolume:
		if value < 0 || value > rda5807.MaxVolume {
			return fmt.Errorf("%w: volume %d, want 0-%d", rda5807.ErrInvalidSetting, value, rda5807.MaxVolume)
		}
		return r.dev.SetVolume(uint8(value))
	case ControlDeemphasis:
		return r.dev.SetDeemphasis(rda5807.Deemphasis(value))
	default:
		return fmt.Errorf("%w: %d", ErrUnknownControl, c)
	}
}

// SetMuted mutes or unmutes the radio.
//
// Muting also puts the chip in standby to save power, and unmuting wakes it;
// the two bits live in the same register but are written in separate cycles.
// A consequence of the coupling is that a muted radio can not seek. Both
// writes are attempted even if the first fails; the first error wins.
func (r *Radio) SetMuted(muted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.muted = muted
	err1 := r.dev.SetEnabled(!muted)
	err2 := r.dev.SetMuted(muted)
	if err1 != nil {
		return err1
	}
	return err2
}

// Muted reports the last requested mute state. This is the adapter's own
// bookkeeping, not a register read.
func (r *Radio) Muted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.muted
}

// Tune starts tuning to f. Completion shows up in Report().Tuned.
func (r *Radio) Tune(f physic.Frequency) error {
	return r.dev.SetFrequency(f)
}

// Seek starts an autonomous station scan. It will not find anything while
// the radio is muted, since muting disables the chip.
func (r *Radio) Seek(dir rda5807.SeekDirection, mode rda5807.SeekMode) error {
	return r.dev.StartSeek(dir, mode)
}

// Report queries the device and scales the result for presentation.
func (r *Radio) Report() (Report, error) {
	s, err := r.dev.Status()
	if err != nil {
		return Report{}, err
	}
	rep := Report{
		Tuned:      s.SeekComplete && !s.SeekFailed,
		SeekFailed: s.SeekFailed,
		Signal:     uint16(s.RSSI) << 9,
	}
	if s.StereoKnown {
		rep.Stereo = s.Stereo
		rep.Mono = !s.Stereo
	} else {
		rep.Stereo = true
		rep.Mono = true
	}
	return rep, nil
}

// Suspend puts the chip in standby. Control values are kept by the chip and
// by this adapter, so Resume restores the previous state.
func (r *Radio) Suspend() error {
	return r.dev.SetEnabled(false)
}

// Resume wakes the chip after Suspend, but only if the radio was not muted:
// a muted radio is kept in standby, matching the mute coupling in SetMuted.
func (r *Radio) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.muted {
		return nil
	}
	return r.dev.SetEnabled(true)
}

// String implements fmt.Stringer.
func (r *Radio) String() string {
	return fmt.Sprintf("tuner: %s", r.dev)
}
