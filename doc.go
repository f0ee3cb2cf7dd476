// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package radio is a container for FM radio receiver drivers.
//
// Package rda5807 is the register-level driver, package tuner exposes it as
// named radio controls, and package meter renders signal strength to a
// terminal.
package radio
