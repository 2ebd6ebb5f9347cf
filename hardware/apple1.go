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

package hardware

import (
	"github.com/jetsetilly/gopher1/disassembly"
	"github.com/jetsetilly/gopher1/environment"
	"github.com/jetsetilly/gopher1/hardware/aci"
	"github.com/jetsetilly/gopher1/hardware/cpu"
	"github.com/jetsetilly/gopher1/hardware/memory"
	"github.com/jetsetilly/gopher1/hardware/memory/rom"
	"github.com/jetsetilly/gopher1/hardware/pia"
	"github.com/jetsetilly/gopher1/logger"
)

// Apple1 struct is the main container for the emulated components of the
// Apple-1.
type Apple1 struct {
	Env *environment.Environment

	CPU *cpu.CPU
	Mem *memory.Memory

	// log every instruction as it is executed
	trace bool
}

// NewApple1 creates a new Apple1 and everything associated with the hardware.
// The machine is reset and ready to run the monitor.
//
// A nil environment is replaced with a new main emulation environment. The
// random number generator of the environment is plumbed to the cycle count of
// the new Apple1.
func NewApple1(env *environment.Environment, display pia.Display, storage aci.Storage) *Apple1 {
	if env == nil {
		env = environment.NewEnvironment(nil)
	}

	a1 := &Apple1{Env: env}
	env.Random.Plumb(a1)

	a1.Mem = memory.NewMemory(pia.NewPIA(display, env.Random), aci.NewACI(env, storage))
	a1.Mem.LoadROMs(rom.Wozmon, rom.ACI)
	a1.CPU = cpu.NewCPU(a1.Mem)
	a1.Reset()

	return a1
}

// InstallROMs replaces the monitor and ACI ROM images and resets the machine.
// A nil or empty image leaves the existing image in place.
func (a1 *Apple1) InstallROMs(monitor []uint8, aciROM []uint8) {
	a1.Mem.LoadROMs(monitor, aciROM)
	a1.Reset()
}

// Cycles returns the number of cycles since the last reset. Satisfies the
// random.Clock interface.
func (a1 *Apple1) Cycles() uint64 {
	return a1.CPU.Cycles
}

// SetTrace turns instruction logging on or off.
func (a1 *Apple1) SetTrace(trace bool) {
	a1.trace = trace
}

// Reset emulates the reset button on the keyboard. The CPU is reset through
// the reset vector and the display must be readied again by the monitor.
func (a1 *Apple1) Reset() {
	a1.CPU.Reset()
	a1.Mem.PIA.Reset()
}

// ResetTo is the same as Reset() but the CPU starts at the supplied address
// rather than the address in the reset vector.
func (a1 *Apple1) ResetTo(start uint16) {
	a1.CPU.ResetTo(start)
	a1.Mem.PIA.Reset()
}

// KeyPressed delivers a key to the keyboard latch. Any unread key is lost.
func (a1 *Apple1) KeyPressed(key uint8) {
	a1.Mem.PIA.KeyPressed(key)
}

// KeyWaiting returns true if the last key delivered with KeyPressed() has not
// yet been read by the CPU.
func (a1 *Apple1) KeyWaiting() bool {
	return a1.Mem.PIA.KeyWaiting()
}

// IRQ requests a maskable interrupt. Returns true if the interrupt was taken.
func (a1 *Apple1) IRQ() bool {
	return a1.CPU.IRQ()
}

// NMI requests a non-maskable interrupt.
func (a1 *Apple1) NMI() {
	a1.CPU.NMI()
}

// Step the emulation one CPU instruction. Returns the number of cycles
// consumed.
func (a1 *Apple1) Step() int {
	n := a1.CPU.Step()
	if a1.trace {
		logger.Logf(a1.Env, "cpu", "%s  %s", disassembly.FromResult(a1.CPU.LastResult), a1.CPU)
	}
	return n
}
