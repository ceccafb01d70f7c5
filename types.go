// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9488

import (
	"fmt"
)

// Rotation selects how logical (x,y) coordinates map onto the physical
// 320x480 panel.
type Rotation int

// Valid Rotation values.
const (
	Portrait Rotation = iota
	Landscape
	PortraitInverted
	LandscapeInverted
)

// Panel dimensions for the two orientation families.
const (
	portraitWidth   uint16 = 320
	portraitHeight  uint16 = 480
	landscapeWidth  uint16 = 480
	landscapeHeight uint16 = 320
)

// madctl is the memory-access-control register value per rotation, encoding
// the controller's row/column order and mirroring bits.
var madctl = [4]byte{
	0x48, // Portrait
	0x28, // Landscape
	0x88, // PortraitInverted
	0xE8, // LandscapeInverted
}

// canonical clamps out-of-range values to Portrait.
func (r Rotation) canonical() Rotation {
	if r < Portrait || r > LandscapeInverted {
		return Portrait
	}
	return r
}

// IsLandscape returns true for the landscape-family rotations, which swap
// the column and page axes of the controller.
func (r Rotation) IsLandscape() bool {
	r = r.canonical()
	return r == Landscape || r == LandscapeInverted
}

// Dimensions returns the logical width and height of the panel under this
// rotation.
func (r Rotation) Dimensions() (width, height uint16) {
	if r.IsLandscape() {
		return landscapeWidth, landscapeHeight
	}
	return portraitWidth, portraitHeight
}

func (r Rotation) String() string {
	switch r.canonical() {
	case Landscape:
		return "Landscape"
	case PortraitInverted:
		return "PortraitInverted"
	case LandscapeInverted:
		return "LandscapeInverted"
	default:
		return "Portrait"
	}
}

// Set sets the Rotation to a value represented by the string s. Set
// implements the flag.Value interface.
func (r *Rotation) Set(s string) error {
	switch s {
	case "portrait":
		*r = Portrait
	case "landscape":
		*r = Landscape
	case "portrait-inverted":
		*r = PortraitInverted
	case "landscape-inverted":
		*r = LandscapeInverted
	default:
		return fmt.Errorf("unknown rotation %q: expected portrait, landscape, portrait-inverted or landscape-inverted", s)
	}
	return nil
}

// colorMask keeps the 18 significant bits of an RGB666 word.
const colorMask uint32 = 0x3FFFF

// Predefined RGB666 colors, packed R[17:12] G[11:6] B[5:0].
const (
	Black   uint32 = 0x00000
	White   uint32 = 0x3FFFF
	Red     uint32 = 0x3F000
	Green   uint32 = 0x00FC0
	Blue    uint32 = 0x0003F
	Yellow  uint32 = 0x3FFC0
	Cyan    uint32 = 0x00FFF
	Magenta uint32 = 0x3F03F
)
