// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tuner_test

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"periph.io/x/radio/rda5807"
	"periph.io/x/radio/tuner"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	dev, err := rda5807.NewI2C(b, rda5807.I2CAddr)
	if err != nil {
		log.Fatalf("failed to initialize RDA5807: %v", err)
	}
	r := tuner.New(dev)

	// Unmuting powers the chip up as well.
	if err := r.SetMuted(false); err != nil {
		log.Fatal(err)
	}
	if err := r.Set(tuner.ControlVolume, 8); err != nil {
		log.Fatal(err)
	}
	if err := r.Tune(100 * physic.MegaHertz); err != nil {
		log.Fatal(err)
	}

	rep, err := r.Report()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("tuned=%t stereo=%t signal=%d\n", rep.Tuned, rep.Stereo, rep.Signal)
}
