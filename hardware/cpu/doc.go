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

// Package cpu emulates the NMOS 6502 microprocessor found in the Apple-1. Like
// all 8-bit processors of the era, the 6502 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the instruction
// table. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument to NewCPU(). All memory access, including the fetching of
// opcodes and operands, goes through that interface.
//
// The bread-and-butter of the CPU type is the Step() function, which executes
// a single instruction and returns the number of cycles consumed.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for {
//		cycles := mc.Step()
//		...
//	}
//
// Only whole-instruction cycle totals are modelled. The CPU does not call back
// to the rest of the system during an instruction.
//
// Interrupts are requested with the IRQ() and NMI() functions. An IRQ is
// ignored when the interrupt disable flag is set.
//
// The LastResult field records the details of the most recently executed
// instruction. See the execution package.
package cpu
