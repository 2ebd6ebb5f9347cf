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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher1/hardware/cpu/execution"
	"github.com/jetsetilly/gopher1/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher1/hardware/cpu/registers"
)

// Entry is a disassembled instruction. The string fields are the constituent
// parts of the disassembly of the execution.Result.
type Entry struct {
	// the Cycles field of the Result is the number of cycles in the
	// definition. the other fields are as they would be for an executed
	// instruction
	Result execution.Result

	Address  string
	Bytecode string
	Operator string
	Operand  string
}

// newEntry creates an Entry for the supplied result.
func newEntry(result execution.Result) *Entry {
	e := &Entry{
		Result:   result,
		Address:  fmt.Sprintf("%04X", result.Address),
		Operator: result.Defn.Operator.String(),
	}

	operand := result.InstructionData

	switch result.Defn.Bytes {
	case 3:
		e.Operand = fmt.Sprintf("$%04X", operand)
		e.Bytecode = fmt.Sprintf("%02X %02X %02X", result.Defn.OpCode, operand&0x00ff, operand&0xff00>>8)
	case 2:
		e.Bytecode = fmt.Sprintf("%02X %02X", result.Defn.OpCode, operand&0x00ff)
		if !result.Defn.IsDefined() {
			break
		}
		if result.Defn.IsBranch() {
			e.Operand = fmt.Sprintf("$%04X", absoluteBranchDestination(result.Address, operand))
		} else {
			e.Operand = fmt.Sprintf("$%02X", operand)
		}
	default:
		e.Bytecode = fmt.Sprintf("%02X", result.Defn.OpCode)
	}

	e.Operand = addrModeDecoration(e.Operand, result.Defn.AddressingMode)

	return e
}

func (e *Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s  %-8s  %s %s", e.Address, e.Bytecode, e.Operator, e.Operand))
}

// decorate operand with addressing mode indicators
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	s := operand

	switch mode {
	case instructions.Accumulator:
		s = "A"
	case instructions.Immediate:
		s = fmt.Sprintf("#%s", operand)
	case instructions.Indirect:
		s = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		s = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		s = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	}

	return s
}

// absolute branch destination returns the branch operand as the address of the
// branched PC, rather than an offset value.
func absoluteBranchDestination(addr uint16, operand uint16) uint16 {
	// create a mock register with the instruction's address as the initial value
	pc := registers.NewProgramCounter(addr)

	// all 6502 branch instructions are 2 bytes in length
	pc.Add(2)

	// because we're doing 16 bit arithmetic with an 8bit value, we need to
	// make sure the sign bit has been propogated to the more-significant bits
	if operand&0x0080 == 0x0080 {
		operand |= 0xff00
	}

	// add the 2s-complement value to the mock program counter
	pc.Add(operand)

	return pc.Address()
}
