// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package meter implements a signal-strength bar that outputs to terminal
// (stdout) using ANSI color codes.
//
// Useful to watch reception while aiming an antenna, or while a seek walks
// the band.
package meter

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
)

// MaxLevel is the full-scale input level, matching the 7-bit RSSI indicator
// of an FM tuner chip.
const MaxLevel = 127

// Opts represents the options available for this meter.
type Opts struct {
	// Width is the bar length in terminal cells. Defaults to 32.
	Width   int
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a 1D level meter that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	width := opts.Width
	if width <= 0 {
		width = 32
	}
	return &Dev{
		w:       colorable.NewColorableStdout(),
		width:   width,
		palette: *p,
	}
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("SignalMeter(%d)", d.width)
}

// Halt implements conn.Resource.
//
// It moves to a fresh line and resets the terminal colors so the display is
// not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Update redraws the bar in place for a level between 0 and MaxLevel.
// Anything above full scale is clamped.
func (d *Dev) Update(level uint8) error {
	if level > MaxLevel {
		level = MaxLevel
	}
	lit := (int(level)*d.width + MaxLevel/2) / MaxLevel
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i := 0; i < d.width; i++ {
		c := color.NRGBA{R: 24, G: 24, B: 24, A: 255}
		if i < lit {
			c = cellColor(i, d.width)
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = d.buf.WriteString("\033[0m ")
	_, err := d.buf.WriteTo(d.w)
	return err
}

// cellColor fades from green at the low end of the bar to red at full scale.
func cellColor(i, width int) color.NRGBA {
	if width < 2 {
		return color.NRGBA{R: 255, A: 255}
	}
	r := 255 * i / (width - 1)
	return color.NRGBA{R: uint8(r), G: uint8(255 - r), B: 0, A: 255}
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
