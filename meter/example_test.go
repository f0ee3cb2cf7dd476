// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package meter_test

import (
	"log"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"periph.io/x/radio/meter"
	"periph.io/x/radio/rda5807"
)

// Example tunes a station and watches its signal strength for a few seconds.
func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d, err := rda5807.NewI2C(b, rda5807.I2CAddr)
	if err != nil {
		log.Fatalf("failed to initialize RDA5807: %v", err)
	}
	if err := d.SetEnabled(true); err != nil {
		log.Fatal(err)
	}
	if err := d.SetFrequency(100 * physic.MegaHertz); err != nil {
		log.Fatal(err)
	}

	m := meter.New(&meter.Opts{Width: 40})
	defer m.Halt()
	for end := time.Now().Add(5 * time.Second); time.Now().Before(end); {
		s, err := d.Status()
		if err != nil {
			log.Fatal(err)
		}
		if err := m.Update(s.RSSI); err != nil {
			log.Fatal(err)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
