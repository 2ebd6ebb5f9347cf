// This file is part of Gopher1.
//
// Gopher1 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher1 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher1.  If not, see <https://www.gnu.org/licenses/>.

package pia

import (
	"fmt"

	"github.com/jetsetilly/gopher1/hardware/memory/memorymap"
)

// Display is the collaborator that receives characters written to the DSP
// register. The value is the unmodified byte written by the CPU.
type Display interface {
	Output(value uint8)
}

// FloatingBus is the source of values for reads of the DSP register. The
// random.Random type satisfies this interface.
type FloatingBus interface {
	Intn(n int) int
}

// the value of DSPCR when the display is ready to accept characters
const displayReady = 0x80

// the value written to DSP by the monitor to indicate that it is ready to use
// the display
const displayHandshake = 0x7f

// PIA implements the keyboard and display registers of the 6820 in the Apple-1.
type PIA struct {
	display Display
	bus     FloatingBus

	// keyboard latch. bit 7 is set when a key is waiting
	kbd uint8

	// keyboard status. 0x80 when a key is waiting
	kbdcr uint8

	// last value written to DSP. kept for the String() function only
	dsp uint8

	// display status. 0x80 when the display is ready
	dspcr uint8
}

// NewPIA is the preferred method of initialisation for the PIA type. A nil
// display discards output.
func NewPIA(display Display, bus FloatingBus) *PIA {
	return &PIA{
		display: display,
		bus:     bus,
	}
}

// Plumb a new display into the PIA.
func (pia *PIA) Plumb(display Display) {
	pia.display = display
}

func (pia *PIA) String() string {
	return fmt.Sprintf("KBD=%02x KBDCR=%02x DSP=%02x DSPCR=%02x", pia.kbd, pia.kbdcr, pia.dsp, pia.dspcr)
}

// Reset clears the display ready state. The monitor will perform the display
// handshake again when it starts.
func (pia *PIA) Reset() {
	pia.dspcr = 0
}

// KeyPressed latches a key into the keyboard register. Any unread key is
// replaced.
func (pia *PIA) KeyPressed(key uint8) {
	pia.kbd = key | 0x80
	pia.kbdcr = 0x80
}

// KeyWaiting returns true if a key has been latched but not yet read.
func (pia *PIA) KeyWaiting() bool {
	return pia.kbdcr&0x80 == 0x80
}

// DisplayReady returns true if the display handshake has been performed.
func (pia *PIA) DisplayReady() bool {
	return pia.dspcr == displayReady
}

// Read a PIA register. Reading KBD consumes the latched key.
func (pia *PIA) Read(address uint16) uint8 {
	switch address {
	case memorymap.KBD:
		v := pia.kbd
		pia.kbd &= 0x7f
		pia.kbdcr = 0x00
		return v
	case memorymap.KBDCR:
		return pia.kbdcr
	case memorymap.DSP:
		if pia.bus == nil {
			return 0
		}
		return uint8(pia.bus.Intn(256))
	case memorymap.DSPCR:
		return pia.dspcr
	}
	return 0
}

// Peek returns the value of a PIA register without any side effects. The
// value of DSP is the last value written to it.
func (pia *PIA) Peek(address uint16) uint8 {
	switch address {
	case memorymap.KBD:
		return pia.kbd
	case memorymap.KBDCR:
		return pia.kbdcr
	case memorymap.DSP:
		return pia.dsp
	case memorymap.DSPCR:
		return pia.dspcr
	}
	return 0
}

// Write a PIA register. Only writes to DSP have any effect.
func (pia *PIA) Write(address uint16, value uint8) {
	if address != memorymap.DSP {
		return
	}

	pia.dsp = value

	if pia.dspcr != 0 {
		if pia.display != nil {
			pia.display.Output(value)
		}
		return
	}

	if value == displayHandshake {
		pia.dspcr = displayReady
	}
}
