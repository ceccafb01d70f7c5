// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9488

import (
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"

	"github.com/tft-drivers/ili9488/image18bit"
)

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image18bit.RGB666Model
}

// Bounds implements display.Drawer. It reflects the active rotation.
func (d *Dev) Bounds() image.Rectangle {
	w, h := d.rot.Dimensions()
	return image.Rect(0, 0, int(w), int(h))
}

// Draw implements display.Drawer. The destination rectangle is clipped to
// the panel, the window is armed once and the source pixels are streamed
// row-major, converting each to RGB666.
//
// Since the driver keeps no frame buffer there is no differential update;
// every covered pixel is transmitted.
func (d *Dev) Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	if err := d.checkActive(); err != nil {
		return err
	}
	dstRect = dstRect.Intersect(d.Bounds())
	if dstRect.Empty() {
		return nil
	}

	eh := errorHandler{d: d}
	setAddressWindow(&eh, d.rot,
		uint16(dstRect.Min.X), uint16(dstRect.Min.Y),
		uint16(dstRect.Max.X-1), uint16(dstRect.Max.Y-1))

	// Fast path for the native image type.
	if img, ok := src.(*image18bit.Image); ok {
		for y := 0; y < dstRect.Dy(); y++ {
			for x := 0; x < dstRect.Dx(); x++ {
				eh.sendData(img.RGB666At(sp.X+x, sp.Y+y).Pack())
			}
		}
		return eh.err
	}

	for y := 0; y < dstRect.Dy(); y++ {
		for x := 0; x < dstRect.Dx(); x++ {
			c := image18bit.RGB666Model.Convert(src.At(sp.X+x, sp.Y+y)).(image18bit.RGB666)
			eh.sendData(c.Pack())
		}
	}
	return eh.err
}

var _ display.Drawer = &Dev{}
