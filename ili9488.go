// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9488

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Commands
const (
	sleepIn              byte = 0x10
	sleepOut             byte = 0x11
	displayOff           byte = 0x28
	displayOn            byte = 0x29
	columnAddressSet     byte = 0x2A
	pageAddressSet       byte = 0x2B
	memoryWrite          byte = 0x2C
	memoryAccessControl  byte = 0x36
	interfacePixelFormat byte = 0x3A
)

// pixelFormat18bit selects 18 bits per pixel on both the CPU and RGB
// interfaces.
const pixelFormat18bit uint32 = 0x66

const (
	busWidth = 18
	busMask  = gpio.GPIOValue(1<<busWidth) - 1
)

// Reset and command settle times. The datasheet minimums are 10µs for the
// reset pulse and 120ms after sleep-out; the values used here are the ones
// the panel vendor code uses and leave a wide margin.
const (
	delayReset  = 20 * time.Millisecond
	delayBoot   = 120 * time.Millisecond
	delaySleep  = 120 * time.Millisecond
	delaySettle = 20 * time.Millisecond
)

type powerState int

const (
	stateUninitialized powerState = iota
	stateActive
	stateOff
	stateAsleep
)

var (
	errNotInitialized = errors.New("ili9488: display not initialized")
	errDisplayOff     = errors.New("ili9488: display is off")
	errAsleep         = errors.New("ili9488: display is asleep")
)

// Opts holds the configuration for the device.
type Opts struct {
	// StrobeHold is how long WR is kept low for each word on the bus. The
	// controller samples the data lines on the rising edge and needs the
	// strobe held for at least two of its clock cycles. Zero means no
	// artificial hold, for hosts whose pin writes are slower than that
	// anyway.
	StrobeHold time.Duration
}

// DefaultOpts is the recommended default configuration.
var DefaultOpts = Opts{
	StrobeHold: 1 * time.Microsecond,
}

// Dev is a handle to an ILI9488 connected over an 18-bit parallel bus.
//
// Dev is not safe for concurrent use; callers with multiple goroutines must
// serialize access themselves.
type Dev struct {
	data gpio.Group  // DB0..DB17, bit i of a word drives pin i
	wr   gpio.PinOut // write strobe, active low
	cs   gpio.PinOut // chip select, active low
	dc   gpio.PinOut // command/data select, low selects command
	rst  gpio.PinOut // reset, active low

	opts  Opts
	rot   Rotation
	state powerState
}

// New returns a Dev for an ILI9488 wired to the given pins. The first 18
// pins of the data group must be connected to DB0..DB17 in order.
//
// The control lines are driven to their idle levels. The display itself is
// not touched until Init is called.
func New(data gpio.Group, wr, cs, dc, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if data == nil || wr == nil || cs == nil || dc == nil || rst == nil {
		return nil, errors.New("ili9488: all pins are required")
	}
	if n := len(data.Pins()); n < busWidth {
		return nil, fmt.Errorf("ili9488: data group needs %d pins, got %d", busWidth, n)
	}

	d := &Dev{
		data: data,
		wr:   wr,
		cs:   cs,
		dc:   dc,
		rst:  rst,
		opts: *opts,
		rot:  Portrait,
	}

	eh := errorHandler{d: d}
	eh.wrOut(gpio.High)
	eh.csOut(gpio.High)
	eh.dcOut(gpio.High)
	eh.rstOut(gpio.High)
	if eh.err != nil {
		return nil, eh.err
	}
	return d, nil
}

// writeWord puts one 18-bit word on the data lines and strobes WR. All
// lines are driven low first so a previous word can never leak through a
// group that sets pins one at a time.
func (d *Dev) writeWord(w uint32) error {
	eh := errorHandler{d: d}
	eh.groupOut(0, busMask)
	eh.groupOut(gpio.GPIOValue(w)&busMask, busMask)
	eh.wrOut(gpio.Low)
	eh.delay(d.opts.StrobeHold)
	eh.wrOut(gpio.High)
	return eh.err
}

// sendCommand writes a single command opcode, zero-extended to a bus word.
// CS is released again even if a pin write failed mid-transaction.
func (d *Dev) sendCommand(cmd byte) error {
	eh := errorHandler{d: d}
	eh.csOut(gpio.Low)
	eh.dcOut(gpio.Low)
	eh.writeWord(uint32(cmd))
	eh.releaseCS()
	return eh.err
}

// sendData writes a single data word.
func (d *Dev) sendData(w uint32) error {
	eh := errorHandler{d: d}
	eh.csOut(gpio.Low)
	eh.dcOut(gpio.High)
	eh.writeWord(w)
	eh.releaseCS()
	return eh.err
}

// Init resets the controller and brings the display up in the given
// rotation. Out-of-range rotations fall back to Portrait.
//
// It can be called again at any time to re-run the power-on sequence.
func (d *Dev) Init(r Rotation) error {
	r = r.canonical()

	eh := errorHandler{d: d}
	eh.rstOut(gpio.Low)
	eh.delay(delayReset)
	eh.rstOut(gpio.High)
	eh.delay(delayBoot)
	initDisplay(&eh, r)
	if eh.err != nil {
		return eh.err
	}
	d.rot = r
	d.state = stateActive
	return nil
}

// SetRotation changes the logical orientation of the display. Out-of-range
// values fall back to Portrait.
//
// The driver's orientation state is only updated once the controller has
// accepted the new memory-access-control value, so a failed call leaves
// coordinate mapping unchanged.
func (d *Dev) SetRotation(r Rotation) error {
	if err := d.checkActive(); err != nil {
		return err
	}
	r = r.canonical()
	eh := errorHandler{d: d}
	setRotation(&eh, r)
	if eh.err != nil {
		return eh.err
	}
	d.rot = r
	return nil
}

// Rotation returns the active orientation.
func (d *Dev) Rotation() Rotation {
	return d.rot
}

// DisplayOff blanks the panel while keeping the controller powered. Drawing
// is rejected until DisplayOn is called.
func (d *Dev) DisplayOff() error {
	switch d.state {
	case stateActive, stateOff:
	case stateUninitialized:
		return errNotInitialized
	default:
		return errAsleep
	}
	eh := errorHandler{d: d}
	turnDisplayOff(&eh)
	if eh.err != nil {
		return eh.err
	}
	d.state = stateOff
	return nil
}

// DisplayOn turns the panel back on after DisplayOff.
func (d *Dev) DisplayOn() error {
	switch d.state {
	case stateActive, stateOff:
	case stateUninitialized:
		return errNotInitialized
	default:
		return errAsleep
	}
	eh := errorHandler{d: d}
	turnDisplayOn(&eh)
	if eh.err != nil {
		return eh.err
	}
	d.state = stateActive
	return nil
}

// Sleep blanks the display and puts the controller in its low power mode.
// Graphics RAM contents are retained.
func (d *Dev) Sleep() error {
	switch d.state {
	case stateActive, stateOff:
	case stateUninitialized:
		return errNotInitialized
	default:
		return errAsleep
	}
	eh := errorHandler{d: d}
	enterSleep(&eh)
	if eh.err != nil {
		return eh.err
	}
	d.state = stateAsleep
	return nil
}

// WakeUp brings the controller out of sleep mode and turns the display on.
func (d *Dev) WakeUp() error {
	switch d.state {
	case stateAsleep:
	case stateUninitialized:
		return errNotInitialized
	default:
		return errors.New("ili9488: display is not asleep")
	}
	eh := errorHandler{d: d}
	leaveSleep(&eh)
	if eh.err != nil {
		return eh.err
	}
	d.state = stateActive
	return nil
}

// Halt turns the display off and releases the data group. The device must
// be re-initialized with Init before it can be used again.
//
// Halt implements conn.Resource.
func (d *Dev) Halt() error {
	eh := errorHandler{d: d}
	if d.state == stateActive {
		turnDisplayOff(&eh)
	}
	d.state = stateUninitialized
	if eh.err != nil {
		return eh.err
	}
	return d.data.Halt()
}

func (d *Dev) String() string {
	w, h := d.rot.Dimensions()
	return fmt.Sprintf("ili9488.Dev{%s, %dx%d}", d.data, w, h)
}

func (d *Dev) checkActive() error {
	switch d.state {
	case stateActive:
		return nil
	case stateUninitialized:
		return errNotInitialized
	case stateOff:
		return errDisplayOff
	default:
		return errAsleep
	}
}

func (d *Dev) checkBounds(x, y uint16) error {
	w, h := d.rot.Dimensions()
	if x >= w || y >= h {
		return fmt.Errorf("ili9488: point (%d,%d) outside %dx%d display", x, y, w, h)
	}
	return nil
}

var _ conn.Resource = &Dev{}
