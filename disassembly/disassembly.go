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

package disassembly

import (
	"github.com/jetsetilly/gopher1/hardware/cpu/execution"
	"github.com/jetsetilly/gopher1/hardware/cpu/instructions"
)

// Memory is the side effect free access to memory required for disassembly.
// The memory.Memory type of the hardware package satisfies this interface.
type Memory interface {
	Peek(address uint16) uint8
}

// Disassemble the instruction at the address. Returns the disassembled entry
// and the address of the next instruction. Addresses wrap at the top of
// memory.
//
// Undefined opcodes are disassembled as two byte instructions because that is
// how the CPU executes them.
func Disassemble(mem Memory, address uint16) (*Entry, uint16) {
	defn := instructions.Lookup(mem.Peek(address))

	result := execution.Result{
		Address: address,
		Defn:    defn,
		Cycles:  defn.Cycles,
	}

	switch defn.Bytes {
	case 3:
		result.InstructionData = uint16(mem.Peek(address+1)) | uint16(mem.Peek(address+2))<<8
	case 2:
		result.InstructionData = uint16(mem.Peek(address + 1))
	}

	return newEntry(result), address + uint16(defn.Bytes)
}

// FromResult creates an Entry for an instruction that has been executed. The
// entry is the same as Disassemble() would produce but with the cycles and
// page fault information of the execution.
func FromResult(result execution.Result) *Entry {
	return newEntry(result)
}

// Range disassembles the instructions between start and end, inclusive. The
// last instruction may extend past the end address.
func Range(mem Memory, start uint16, end uint16) []*Entry {
	var entries []*Entry

	a := uint32(start)
	for a <= uint32(end) {
		e, next := Disassemble(mem, uint16(a))
		entries = append(entries, e)

		// stop at the top of memory
		if next < uint16(a) {
			break
		}
		a = uint32(next)
	}

	return entries
}
