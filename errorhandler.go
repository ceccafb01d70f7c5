// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9488

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler is a wrapper for error management. It keeps the first pin or
// bus error and turns the rest of the transaction into no-ops, so sequence
// code can stay free of per-step error checks.
//
// errorHandler implements controller.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) groupOut(value, mask gpio.GPIOValue) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.data.Out(value, mask)
}

func (eh *errorHandler) wrOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.wr.Out(l)
}

func (eh *errorHandler) csOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.cs.Out(l)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.dc.Out(l)
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.rst.Out(l)
}

// releaseCS drives CS high even when an earlier step of the transaction
// failed, so the chip is never left selected.
func (eh *errorHandler) releaseCS() {
	if err := eh.d.cs.Out(gpio.High); err != nil && eh.err == nil {
		eh.err = err
	}
}

func (eh *errorHandler) writeWord(w uint32) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.writeWord(w)
}

func (eh *errorHandler) sendCommand(cmd byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.sendCommand(cmd)
}

func (eh *errorHandler) sendData(w uint32) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.sendData(w)
}

func (eh *errorHandler) delay(t time.Duration) {
	if eh.err != nil {
		return
	}
	time.Sleep(t)
}
