// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9488

import "time"

// controller abstracts the transaction layer so the command sequences below
// can be exercised against a recording fake.
type controller interface {
	sendCommand(byte)
	sendData(uint32)
	delay(time.Duration)
}

// setAddressWindow arms the controller to accept pixel data for the
// rectangle (x0,y0)-(x1,y1) in logical coordinates, row-major from the top
// left. Landscape-family rotations swap the column and page axes; mirroring
// is handled entirely by the memory-access-control register set at rotation
// time.
//
// Callers must pass x1 >= x0 and y1 >= y0; inverted ranges are forwarded to
// the controller as-is and the result is undefined.
func setAddressWindow(ctrl controller, rot Rotation, x0, y0, x1, y1 uint16) {
	if rot.IsLandscape() {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	ctrl.sendCommand(columnAddressSet)
	ctrl.sendData(uint32(x0 >> 8))
	ctrl.sendData(uint32(x0 & 0xFF))
	ctrl.sendData(uint32(x1 >> 8))
	ctrl.sendData(uint32(x1 & 0xFF))
	ctrl.sendCommand(pageAddressSet)
	ctrl.sendData(uint32(y0 >> 8))
	ctrl.sendData(uint32(y0 & 0xFF))
	ctrl.sendData(uint32(y1 >> 8))
	ctrl.sendData(uint32(y1 & 0xFF))
	ctrl.sendCommand(memoryWrite)
}

// setRotation programs the memory-access-control register and returns the
// rotation actually applied, with out-of-range values clamped to Portrait.
func setRotation(ctrl controller, rot Rotation) Rotation {
	rot = rot.canonical()
	ctrl.sendCommand(memoryAccessControl)
	ctrl.sendData(uint32(madctl[rot]))
	return rot
}

// initDisplay runs the power-on sequence. The hardware reset pulse happens
// before this, in Dev.Init, since it needs the reset pin rather than the
// bus.
func initDisplay(ctrl controller, rot Rotation) {
	ctrl.sendCommand(sleepOut)
	ctrl.delay(delayBoot)
	ctrl.sendCommand(interfacePixelFormat)
	ctrl.sendData(pixelFormat18bit)
	setRotation(ctrl, rot)
	ctrl.sendCommand(displayOn)
	ctrl.delay(delaySettle)
}

func turnDisplayOn(ctrl controller) {
	ctrl.sendCommand(displayOn)
	ctrl.delay(delaySettle)
}

func turnDisplayOff(ctrl controller) {
	ctrl.sendCommand(displayOff)
	ctrl.delay(delaySettle)
}

func enterSleep(ctrl controller) {
	turnDisplayOff(ctrl)
	ctrl.sendCommand(sleepIn)
	ctrl.delay(delaySleep)
}

func leaveSleep(ctrl controller) {
	turnDisplayOn(ctrl)
	ctrl.sendCommand(sleepOut)
	ctrl.delay(delaySettle)
}
