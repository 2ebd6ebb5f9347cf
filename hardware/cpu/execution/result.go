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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher1/hardware/cpu/instructions"
)

// Result records the outcome of a single instruction.
type Result struct {
	// address of the opcode
	Address uint16

	// definition of the instruction
	Defn instructions.Definition

	// the operand of the instruction. an 8bit or 16bit value depending on
	// the number of bytes in the instruction
	InstructionData uint16

	// number of cycles consumed by the instruction, including any extra
	// cycles for page faults and taken branches
	Cycles int

	// whether an extra cycle was required because an indexed address or a
	// branch crossed a page boundary
	PageFault bool

	// whether a branch instruction caused the program counter to change
	BranchSuccess bool

	// whether a known buggy code path was triggered
	CPUBug Bug
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04X %s", r.Address, r.Defn.Operator))

	switch r.Defn.Bytes {
	case 2:
		if r.Defn.IsDefined() {
			s.WriteString(fmt.Sprintf(" $%02X", r.InstructionData))
		}
	case 3:
		s.WriteString(fmt.Sprintf(" $%04X", r.InstructionData))
	}

	s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}
