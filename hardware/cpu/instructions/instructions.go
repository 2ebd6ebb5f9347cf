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

package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "impl"
	case Accumulator:
		return "A"
	case Immediate:
		return "#"
	case Relative:
		return "rel"
	case Absolute:
		return "abs"
	case ZeroPage:
		return "zpg"
	case Indirect:
		return "ind"
	case IndexedIndirect:
		return "(ind,X)"
	case IndirectIndexed:
		return "(ind),Y"
	case AbsoluteIndexedX:
		return "abs,X"
	case AbsoluteIndexedY:
		return "abs,Y"
	case ZeroPageIndexedX:
		return "zpg,X"
	case ZeroPageIndexedY:
		return "zpg,Y"
	}
	return "unknown addressing mode"
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == Undefined {
		return fmt.Sprintf("%02X undefined instruction", defn.OpCode)
	}
	return fmt.Sprintf("%02X %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsDefined returns false if the opcode is not part of the instruction set.
func (defn Definition) IsDefined() bool {
	return defn.Operator != Undefined
}
