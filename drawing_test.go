// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9488

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// paint replays decoded transactions against a model of the controller's
// write pointer: data words after a memory write advance column first, then
// page, within the armed address window.
func paint(t *testing.T, txs []tx) map[image.Point]uint32 {
	t.Helper()
	pix := map[image.Point]uint32{}
	var cmd byte
	var args []uint32
	var c0, c1, p0 uint32
	var x, y uint32
	for _, w := range txs {
		if !w.data {
			cmd = byte(w.word)
			args = args[:0]
			if cmd == memoryWrite {
				x, y = c0, p0
			}
			continue
		}
		switch cmd {
		case columnAddressSet, pageAddressSet:
			args = append(args, w.word)
			if len(args) == 4 {
				s := args[0]<<8 | args[1]
				e := args[2]<<8 | args[3]
				if s > e {
					t.Fatalf("window start %d after end %d", s, e)
				}
				if cmd == columnAddressSet {
					c0, c1 = s, e
				} else {
					p0 = s
				}
			}
		case memoryWrite:
			pix[image.Point{X: int(x), Y: int(y)}] = w.word
			x++
			if x > c1 {
				x = c0
				y++
			}
		default:
			t.Fatalf("data word %#x after unexpected command %#x", w.word, cmd)
		}
	}
	return pix
}

func fill(pts map[image.Point]uint32, c uint32, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			pts[image.Point{X: x, Y: y}] = c
		}
	}
}

func drawTestDev(t *testing.T) (*Dev, *busLog) {
	t.Helper()
	d, log := newTestDev(t)
	if err := d.Init(Portrait); err != nil {
		t.Fatal(err)
	}
	log.reset()
	return d, log
}

func TestDrawLineDiagonal(t *testing.T) {
	d, log := drawTestDev(t)

	if err := d.DrawLine(0, 0, 3, 3, Red); err != nil {
		t.Fatal(err)
	}

	want := map[image.Point]uint32{
		{X: 0, Y: 0}: Red,
		{X: 1, Y: 1}: Red,
		{X: 2, Y: 2}: Red,
		{X: 3, Y: 3}: Red,
	}
	if diff := cmp.Diff(paint(t, decode(t, log)), want); diff != "" {
		t.Errorf("DrawLine() difference (-got +want):\n%s", diff)
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	d, log := drawTestDev(t)

	// Endpoints in either order produce the same single window.
	if err := d.DrawLine(5, 7, 2, 7, Green); err != nil {
		t.Fatal(err)
	}

	txs := decode(t, log)
	cmds := 0
	for _, w := range txs {
		if !w.data {
			cmds++
		}
	}
	if cmds != 3 {
		t.Errorf("command count = %d, want a single window", cmds)
	}
	want := map[image.Point]uint32{}
	fill(want, Green, 2, 7, 5, 7)
	if diff := cmp.Diff(paint(t, txs), want); diff != "" {
		t.Errorf("DrawLine() difference (-got +want):\n%s", diff)
	}
}

func TestDrawLineVertical(t *testing.T) {
	d, log := drawTestDev(t)

	if err := d.DrawLine(3, 9, 3, 4, Blue); err != nil {
		t.Fatal(err)
	}

	want := map[image.Point]uint32{}
	fill(want, Blue, 3, 4, 3, 9)
	if diff := cmp.Diff(paint(t, decode(t, log)), want); diff != "" {
		t.Errorf("DrawLine() difference (-got +want):\n%s", diff)
	}
}

func TestDrawRectOutline(t *testing.T) {
	d, log := drawTestDev(t)

	if err := d.DrawRect(1, 1, 4, 3, White); err != nil {
		t.Fatal(err)
	}

	want := map[image.Point]uint32{}
	fill(want, White, 1, 1, 4, 1) // top
	fill(want, White, 1, 3, 4, 3) // bottom
	fill(want, White, 1, 2, 1, 2) // left
	fill(want, White, 4, 2, 4, 2) // right
	got := paint(t, decode(t, log))
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("DrawRect() difference (-got +want):\n%s", diff)
	}
	if _, ok := got[image.Point{X: 2, Y: 2}]; ok {
		t.Error("DrawRect() painted the interior")
	}
}

func TestDrawRectThin(t *testing.T) {
	d, log := drawTestDev(t)

	// Too thin for a hollow interior, degenerates to a fill.
	if err := d.DrawRect(0, 0, 2, 5, Cyan); err != nil {
		t.Fatal(err)
	}

	want := map[image.Point]uint32{}
	fill(want, Cyan, 0, 0, 1, 4)
	if diff := cmp.Diff(paint(t, decode(t, log)), want); diff != "" {
		t.Errorf("DrawRect() difference (-got +want):\n%s", diff)
	}
}

func TestFillRect(t *testing.T) {
	d, log := drawTestDev(t)

	if err := d.FillRect(10, 20, 3, 2, Yellow); err != nil {
		t.Fatal(err)
	}

	want := map[image.Point]uint32{}
	fill(want, Yellow, 10, 20, 12, 21)
	if diff := cmp.Diff(paint(t, decode(t, log)), want); diff != "" {
		t.Errorf("FillRect() difference (-got +want):\n%s", diff)
	}
}

func TestFillRectEmpty(t *testing.T) {
	d, log := drawTestDev(t)

	if err := d.FillRect(10, 20, 0, 5, Yellow); err != nil {
		t.Fatal(err)
	}
	if len(log.events) != 0 {
		t.Errorf("empty FillRect() produced %d bus events", len(log.events))
	}
}

func TestDrawCircle(t *testing.T) {
	d, log := drawTestDev(t)

	if err := d.DrawCircle(10, 10, 2, Magenta); err != nil {
		t.Fatal(err)
	}

	want := map[image.Point]uint32{}
	for _, p := range []image.Point{
		{X: 10, Y: 12}, {X: 10, Y: 8}, {X: 12, Y: 10}, {X: 8, Y: 10},
		{X: 11, Y: 12}, {X: 9, Y: 12}, {X: 11, Y: 8}, {X: 9, Y: 8},
		{X: 12, Y: 11}, {X: 8, Y: 11}, {X: 12, Y: 9}, {X: 8, Y: 9},
	} {
		want[p] = Magenta
	}
	got := paint(t, decode(t, log))
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("DrawCircle() difference (-got +want):\n%s", diff)
	}
	if _, ok := got[image.Point{X: 10, Y: 10}]; ok {
		t.Error("DrawCircle() painted the center")
	}
}

func TestDrawCircleZeroRadius(t *testing.T) {
	d, log := drawTestDev(t)

	if err := d.DrawCircle(10, 10, 0, White); err != nil {
		t.Fatal(err)
	}

	want := map[image.Point]uint32{{X: 10, Y: 10}: White}
	if diff := cmp.Diff(paint(t, decode(t, log)), want); diff != "" {
		t.Errorf("DrawCircle() difference (-got +want):\n%s", diff)
	}
}

func TestFillCircle(t *testing.T) {
	d, log := drawTestDev(t)

	if err := d.FillCircle(10, 10, 2, Green); err != nil {
		t.Fatal(err)
	}

	want := map[image.Point]uint32{}
	fill(want, Green, 9, 8, 11, 12)
	fill(want, Green, 8, 9, 8, 11)
	fill(want, Green, 12, 9, 12, 11)
	if diff := cmp.Diff(paint(t, decode(t, log)), want); diff != "" {
		t.Errorf("FillCircle() difference (-got +want):\n%s", diff)
	}
}

func TestDrawBounds(t *testing.T) {
	d, _ := drawTestDev(t)

	for name, err := range map[string]error{
		"pixel x":        d.DrawPixel(320, 0, White),
		"pixel y":        d.DrawPixel(0, 480, White),
		"rect overflow":  d.FillRect(65535, 0, 2, 2, White),
		"rect wide":      d.FillRect(300, 0, 21, 1, White),
		"line endpoint":  d.DrawLine(0, 0, 320, 10, White),
		"circle left":    d.DrawCircle(1, 10, 2, White),
		"circle right":   d.DrawCircle(318, 10, 2, White),
		"circle bottom":  d.FillCircle(10, 478, 2, White),
		"outline bounds": d.DrawRect(319, 479, 2, 2, White),
	} {
		if err == nil {
			t.Errorf("%s: expected an out of bounds error", name)
		}
	}
}
