// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pingroup assembles discrete gpio.PinOut pins into a gpio.Group.
//
// It is meant for hosts that cannot hand out a native line set for the wide
// data bus of a parallel display: the pins can come from different GPIO
// chips or I/O expanders. Writes are not atomic across pins; pins are
// driven one at a time in bit order.
package pingroup

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

var ErrNotImplemented = errors.New("pingroup: not implemented")

// Group implements gpio.Group over a set of output pins. Bit i of a value
// drives the i-th pin.
type Group struct {
	mu    sync.Mutex
	pins  []gpio.PinOut
	value gpio.GPIOValue
	known bool
}

// New returns a Group driving the given pins. Between 1 and 64 pins are
// supported.
func New(pins ...gpio.PinOut) (*Group, error) {
	if len(pins) == 0 || len(pins) > 64 {
		return nil, fmt.Errorf("pingroup: need between 1 and 64 pins, got %d", len(pins))
	}
	for ix, p := range pins {
		if p == nil {
			return nil, fmt.Errorf("pingroup: pin %d is nil", ix)
		}
	}
	return &Group{pins: pins}, nil
}

// Pins returns the pins in the group, in bit order.
func (gr *Group) Pins() []pin.Pin {
	result := make([]pin.Pin, len(gr.pins))
	for ix, p := range gr.pins {
		result[ix] = p
	}
	return result
}

// ByOffset returns the pin at the given offset into the group.
func (gr *Group) ByOffset(offset int) pin.Pin {
	if offset < 0 || offset >= len(gr.pins) {
		return nil
	}
	return gr.pins[offset]
}

// ByName returns the pin with the given name, or nil.
func (gr *Group) ByName(name string) pin.Pin {
	for _, p := range gr.pins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// ByNumber returns the pin with the given pin number, or nil.
func (gr *Group) ByNumber(number int) pin.Pin {
	for _, p := range gr.pins {
		if p.Number() == number {
			return p
		}
	}
	return nil
}

// Out drives the pins identified by mask to the corresponding bits of
// value, one pin at a time in bit order. A zero mask addresses every pin.
// Pins already at the requested level are skipped.
func (gr *Group) Out(value, mask gpio.GPIOValue) error {
	gr.mu.Lock()
	defer gr.mu.Unlock()
	if mask == 0 {
		mask = gpio.GPIOValue(1)<<len(gr.pins) - 1
	}
	for ix := range gr.pins {
		bit := gpio.GPIOValue(1) << ix
		if mask&bit == 0 {
			continue
		}
		l := gpio.Level(value&bit != 0)
		if gr.known && gpio.Level(gr.value&bit != 0) == l {
			continue
		}
		if err := gr.pins[ix].Out(l); err != nil {
			gr.known = false
			return err
		}
		if l {
			gr.value |= bit
		} else {
			gr.value &^= bit
		}
	}
	gr.known = true
	return nil
}

// Read is not available; the group is output only.
func (gr *Group) Read(mask gpio.GPIOValue) (gpio.GPIOValue, error) {
	return 0, ErrNotImplemented
}

// WaitForEdge is not available; the group is output only.
func (gr *Group) WaitForEdge(timeout time.Duration) (int, gpio.Edge, error) {
	return 0, gpio.NoEdge, ErrNotImplemented
}

// Halt halts every pin in the group and prevents further use.
func (gr *Group) Halt() error {
	gr.mu.Lock()
	defer gr.mu.Unlock()
	var err error
	for _, p := range gr.pins {
		if e := p.Halt(); e != nil && err == nil {
			err = e
		}
	}
	gr.pins = nil
	gr.known = false
	return err
}

func (gr *Group) String() string {
	s := "pingroup.Group[ "
	for _, p := range gr.pins {
		s += p.Name() + " "
	}
	return s + "]"
}

var _ gpio.Group = &Group{}
