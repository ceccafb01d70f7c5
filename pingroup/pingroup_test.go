// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pingroup

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func testPins(n int) []gpio.PinOut {
	pins := make([]gpio.PinOut, n)
	for i := range pins {
		pins[i] = &gpiotest.Pin{N: "DB" + string(rune('0'+i)), Num: 10 + i}
	}
	return pins
}

func levels(t *testing.T, g *Group) string {
	t.Helper()
	s := ""
	for _, p := range g.pins {
		if p.(*gpiotest.Pin).L == gpio.High {
			s = "1" + s
		} else {
			s = "0" + s
		}
	}
	return s
}

func TestNew(t *testing.T) {
	if _, err := New(); err == nil {
		t.Error("New() without pins should fail")
	}
	if _, err := New(testPins(65)...); err == nil {
		t.Error("New() with 65 pins should fail")
	}
	if _, err := New(&gpiotest.Pin{}, nil); err == nil {
		t.Error("New() with a nil pin should fail")
	}
	g, err := New(testPins(4)...)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(g.Pins()); got != 4 {
		t.Errorf("len(Pins()) = %d, want 4", got)
	}
}

func TestOut(t *testing.T) {
	g, err := New(testPins(4)...)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.Out(0b1010, 0b1111); err != nil {
		t.Fatal(err)
	}
	if got := levels(t, g); got != "1010" {
		t.Errorf("levels = %s, want 1010", got)
	}

	// Masked write leaves the other pins alone.
	if err := g.Out(0b0001, 0b0011); err != nil {
		t.Fatal(err)
	}
	if got := levels(t, g); got != "1001" {
		t.Errorf("levels = %s, want 1001", got)
	}

	// Zero mask addresses every pin.
	if err := g.Out(0b0110, 0); err != nil {
		t.Fatal(err)
	}
	if got := levels(t, g); got != "0110" {
		t.Errorf("levels = %s, want 0110", got)
	}
}

func TestByLookups(t *testing.T) {
	g, err := New(testPins(4)...)
	if err != nil {
		t.Fatal(err)
	}

	if p := g.ByOffset(2); p == nil || p.Name() != "DB2" {
		t.Errorf("ByOffset(2) = %v", p)
	}
	if p := g.ByOffset(4); p != nil {
		t.Errorf("ByOffset(4) = %v, want nil", p)
	}
	if p := g.ByOffset(-1); p != nil {
		t.Errorf("ByOffset(-1) = %v, want nil", p)
	}
	if p := g.ByName("DB1"); p == nil || p.Number() != 11 {
		t.Errorf("ByName(DB1) = %v", p)
	}
	if p := g.ByName("nope"); p != nil {
		t.Errorf("ByName(nope) = %v, want nil", p)
	}
	if p := g.ByNumber(13); p == nil || p.Name() != "DB3" {
		t.Errorf("ByNumber(13) = %v", p)
	}
	if p := g.ByNumber(99); p != nil {
		t.Errorf("ByNumber(99) = %v, want nil", p)
	}
}

func TestReadNotImplemented(t *testing.T) {
	g, err := New(testPins(2)...)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Read(0); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Read() = %v, want ErrNotImplemented", err)
	}
	if _, _, err := g.WaitForEdge(0); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("WaitForEdge() = %v, want ErrNotImplemented", err)
	}
}

func TestHalt(t *testing.T) {
	g, err := New(testPins(2)...)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Halt(); err != nil {
		t.Fatal(err)
	}
	if got := len(g.Pins()); got != 0 {
		t.Errorf("len(Pins()) after Halt = %d, want 0", got)
	}
}
