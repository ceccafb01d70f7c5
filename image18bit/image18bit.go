// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image18bit

import (
	"image"
	"image/color"
)

// RGB666 is an 18-bit color with 6 bits per channel. Only the low 6 bits of
// each channel are used.
type RGB666 struct {
	R, G, B uint8
}

// RGBA converts the color to standard 16-bit-per-channel RGBA.
func (c RGB666) RGBA() (r, g, b, a uint32) {
	// Replicate the high bits into the low bits so 0x3F maps to 0xFFFF.
	r = expand6(c.R)
	g = expand6(c.G)
	b = expand6(c.B)
	return r, g, b, 0xFFFF
}

// Pack returns the color as a single bus word, R[17:12] G[11:6] B[5:0].
func (c RGB666) Pack() uint32 {
	return uint32(c.R&0x3F)<<12 | uint32(c.G&0x3F)<<6 | uint32(c.B&0x3F)
}

// Unpack converts a packed R[17:12] G[11:6] B[5:0] word to an RGB666.
func Unpack(w uint32) RGB666 {
	return RGB666{
		R: uint8(w >> 12 & 0x3F),
		G: uint8(w >> 6 & 0x3F),
		B: uint8(w & 0x3F),
	}
}

func expand6(v uint8) uint32 {
	v &= 0x3F
	v8 := uint32(v)<<2 | uint32(v)>>4
	return v8<<8 | v8
}

func toRGB666(c color.Color) color.Color {
	if r, ok := c.(RGB666); ok {
		return r
	}
	r, g, b, _ := c.RGBA()
	return RGB666{
		R: uint8(r >> 10),
		G: uint8(g >> 10),
		B: uint8(b >> 10),
	}
}

// RGB666Model converts any color.Color to RGB666.
var RGB666Model = color.ModelFunc(toRGB666)

// Image is an in-memory RGB666 image. Each pixel takes three bytes, one per
// channel, each holding a 6-bit value.
type Image struct {
	Pix    []byte
	Stride int // Bytes per row.
	Rect   image.Rectangle
}

// New creates a new RGB666 image with the specified bounds.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	stride := 3 * w
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (p *Image) ColorModel() color.Model {
	return RGB666Model
}

// Bounds implements image.Image.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB666At(x, y)
}

// RGB666At returns the color of the pixel at (x,y).
func (p *Image) RGB666At(x, y int) RGB666 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGB666{}
	}
	o := p.pixOffset(x, y)
	return RGB666{R: p.Pix[o], G: p.Pix[o+1], B: p.Pix[o+2]}
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB666(x, y, RGB666Model.Convert(c).(RGB666))
}

// SetRGB666 sets the pixel at (x,y). It is faster than Set as it skips the
// color conversion.
func (p *Image) SetRGB666(x, y int, c RGB666) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	o := p.pixOffset(x, y)
	p.Pix[o] = c.R & 0x3F
	p.Pix[o+1] = c.G & 0x3F
	p.Pix[o+2] = c.B & 0x3F
}

func (p *Image) pixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

var _ image.Image = &Image{}
