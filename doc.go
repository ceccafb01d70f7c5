// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ili9488 controls an ILI9488 TFT LCD controller over an 18-bit
// 8080-style parallel bus.
//
// The driver is immediate mode: every drawing call is translated directly
// into command and pixel-data transactions on the bus, and the controller's
// internal graphics RAM is the only place pixel contents live. There is no
// frame buffer and no read-back path.
//
// The 18 data lines are driven through a gpio.Group, so they can be backed
// by a kernel line set (periph.io/x/host/v3/gpioioctl), an I/O expander, or
// the pingroup subpackage wrapping discrete pins. The WR, CS, DCX and RESET
// control lines are plain gpio.PinOut.
//
// Pixels are 18-bit RGB666, packed R[17:12] G[11:6] B[5:0]. Values wider
// than 18 bits are masked before transmission.
//
// The driver performs no locking. If multiple goroutines share a Dev, the
// caller must serialize access; a fill that has started streaming pixel data
// cannot be interrupted without leaving the controller's write pointer in an
// unknown state.
//
// # Datasheet
//
// https://www.hpinfotech.ro/ILI9488.pdf
package ili9488
