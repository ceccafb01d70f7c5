// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9488

import "fmt"

// fillWindow arms the address window (x0,y0)-(x1,y1) and streams one color
// word per covered pixel.
func fillWindow(ctrl controller, rot Rotation, x0, y0, x1, y1 uint16, c uint32) {
	setAddressWindow(ctrl, rot, x0, y0, x1, y1)
	c &= colorMask
	n := (uint32(x1-x0) + 1) * (uint32(y1-y0) + 1)
	for i := uint32(0); i < n; i++ {
		ctrl.sendData(c)
	}
}

// drawPixel writes a single pixel without state or bounds checks.
func drawPixel(ctrl controller, rot Rotation, x, y uint16, c uint32) {
	setAddressWindow(ctrl, rot, x, y, x, y)
	ctrl.sendData(c & colorMask)
}

// DrawPixel sets the pixel at (x,y) to the RGB666 color c.
func (d *Dev) DrawPixel(x, y uint16, c uint32) error {
	if err := d.checkActive(); err != nil {
		return err
	}
	if err := d.checkBounds(x, y); err != nil {
		return err
	}
	eh := errorHandler{d: d}
	drawPixel(&eh, d.rot, x, y, c)
	return eh.err
}

// FillRect fills the w by h rectangle with top-left corner (x,y).
func (d *Dev) FillRect(x, y, w, h uint16, c uint32) error {
	if err := d.checkActive(); err != nil {
		return err
	}
	if w == 0 || h == 0 {
		return nil
	}
	if err := d.checkRect(x, y, w, h); err != nil {
		return err
	}
	eh := errorHandler{d: d}
	fillWindow(&eh, d.rot, x, y, x+w-1, y+h-1, c)
	return eh.err
}

// DrawRect draws the one pixel wide outline of the w by h rectangle with
// top-left corner (x,y).
func (d *Dev) DrawRect(x, y, w, h uint16, c uint32) error {
	if err := d.checkActive(); err != nil {
		return err
	}
	if w == 0 || h == 0 {
		return nil
	}
	if err := d.checkRect(x, y, w, h); err != nil {
		return err
	}
	eh := errorHandler{d: d}
	if w <= 2 || h <= 2 {
		// Too thin for a hollow interior.
		fillWindow(&eh, d.rot, x, y, x+w-1, y+h-1, c)
		return eh.err
	}
	fillWindow(&eh, d.rot, x, y, x+w-1, y, c)         // top
	fillWindow(&eh, d.rot, x, y+h-1, x+w-1, y+h-1, c) // bottom
	fillWindow(&eh, d.rot, x, y+1, x, y+h-2, c)       // left
	fillWindow(&eh, d.rot, x+w-1, y+1, x+w-1, y+h-2, c)
	return eh.err
}

// FillBackground fills the whole panel with the RGB666 color c.
func (d *Dev) FillBackground(c uint32) error {
	if err := d.checkActive(); err != nil {
		return err
	}
	w, h := d.rot.Dimensions()
	eh := errorHandler{d: d}
	fillWindow(&eh, d.rot, 0, 0, w-1, h-1, c)
	return eh.err
}

// DrawLine draws a one pixel wide line from (x0,y0) to (x1,y1) using
// Bresenham's algorithm. Horizontal and vertical lines are written as a
// single window instead of per-pixel transactions.
func (d *Dev) DrawLine(x0, y0, x1, y1 uint16, c uint32) error {
	if err := d.checkActive(); err != nil {
		return err
	}
	if err := d.checkBounds(x0, y0); err != nil {
		return err
	}
	if err := d.checkBounds(x1, y1); err != nil {
		return err
	}
	eh := errorHandler{d: d}
	switch {
	case y0 == y1:
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		fillWindow(&eh, d.rot, x0, y0, x1, y0, c)
	case x0 == x1:
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		fillWindow(&eh, d.rot, x0, y0, x0, y1, c)
	default:
		bresenham(&eh, d.rot, int(x0), int(y0), int(x1), int(y1), c)
	}
	return eh.err
}

func bresenham(ctrl controller, rot Rotation, x0, y0, x1, y1 int, c uint32) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		drawPixel(ctrl, rot, uint16(x0), uint16(y0), c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawCircle draws the one pixel wide outline of the circle centered at
// (x,y) with radius r, using the midpoint algorithm. The circle must lie
// entirely on the panel.
func (d *Dev) DrawCircle(x, y, r uint16, c uint32) error {
	if err := d.checkActive(); err != nil {
		return err
	}
	if err := d.checkCircle(x, y, r); err != nil {
		return err
	}
	eh := errorHandler{d: d}
	if r == 0 {
		drawPixel(&eh, d.rot, x, y, c)
		return eh.err
	}

	cx, cy := int(x), int(y)
	f := 1 - int(r)
	ddfx, ddfy := 1, -2*int(r)
	dx, dy := 0, int(r)

	drawPixel(&eh, d.rot, x, y+r, c)
	drawPixel(&eh, d.rot, x, y-r, c)
	drawPixel(&eh, d.rot, x+r, y, c)
	drawPixel(&eh, d.rot, x-r, y, c)
	for dx < dy {
		if f >= 0 {
			dy--
			ddfy += 2
			f += ddfy
		}
		dx++
		ddfx += 2
		f += ddfx
		drawPixel(&eh, d.rot, uint16(cx+dx), uint16(cy+dy), c)
		drawPixel(&eh, d.rot, uint16(cx-dx), uint16(cy+dy), c)
		drawPixel(&eh, d.rot, uint16(cx+dx), uint16(cy-dy), c)
		drawPixel(&eh, d.rot, uint16(cx-dx), uint16(cy-dy), c)
		drawPixel(&eh, d.rot, uint16(cx+dy), uint16(cy+dx), c)
		drawPixel(&eh, d.rot, uint16(cx-dy), uint16(cy+dx), c)
		drawPixel(&eh, d.rot, uint16(cx+dy), uint16(cy-dx), c)
		drawPixel(&eh, d.rot, uint16(cx-dy), uint16(cy-dx), c)
	}
	return eh.err
}

// FillCircle fills the circle centered at (x,y) with radius r. The circle
// must lie entirely on the panel.
func (d *Dev) FillCircle(x, y, r uint16, c uint32) error {
	if err := d.checkActive(); err != nil {
		return err
	}
	if err := d.checkCircle(x, y, r); err != nil {
		return err
	}
	eh := errorHandler{d: d}
	if r == 0 {
		drawPixel(&eh, d.rot, x, y, c)
		return eh.err
	}

	cx, cy := int(x), int(y)
	f := 1 - int(r)
	ddfx, ddfy := 1, -2*int(r)
	dx, dy := 0, int(r)

	// Center column, then one pair of vertical spans per octant step.
	fillWindow(&eh, d.rot, x, y-r, x, y+r, c)
	for dx < dy {
		if f >= 0 {
			dy--
			ddfy += 2
			f += ddfy
		}
		dx++
		ddfx += 2
		f += ddfx
		fillWindow(&eh, d.rot, uint16(cx+dx), uint16(cy-dy), uint16(cx+dx), uint16(cy+dy), c)
		fillWindow(&eh, d.rot, uint16(cx-dx), uint16(cy-dy), uint16(cx-dx), uint16(cy+dy), c)
		if dx != dy {
			fillWindow(&eh, d.rot, uint16(cx+dy), uint16(cy-dx), uint16(cx+dy), uint16(cy+dx), c)
			fillWindow(&eh, d.rot, uint16(cx-dy), uint16(cy-dx), uint16(cx-dy), uint16(cy+dx), c)
		}
	}
	return eh.err
}

func (d *Dev) checkRect(x, y, w, h uint16) error {
	pw, ph := d.rot.Dimensions()
	if uint32(x)+uint32(w) > uint32(pw) || uint32(y)+uint32(h) > uint32(ph) {
		return fmt.Errorf("ili9488: rectangle (%d,%d)+%dx%d outside %dx%d display", x, y, w, h, pw, ph)
	}
	return nil
}

func (d *Dev) checkCircle(x, y, r uint16) error {
	pw, ph := d.rot.Dimensions()
	if uint32(x) < uint32(r) || uint32(y) < uint32(r) ||
		uint32(x)+uint32(r) >= uint32(pw) || uint32(y)+uint32(r) >= uint32(ph) {
		return fmt.Errorf("ili9488: circle (%d,%d) r=%d outside %dx%d display", x, y, r, pw, ph)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
