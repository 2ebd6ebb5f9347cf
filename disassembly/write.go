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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the entries to io.Writer
func Write(output io.Writer, entries []*Entry, attr WriteAttr) {
	for _, e := range entries {
		WriteLine(output, e, attr)
	}
}

// WriteLine writes a single entry to io.Writer
func WriteLine(output io.Writer, e *Entry, attr WriteAttr) {
	if e == nil {
		return
	}

	io.WriteString(output, e.Address)
	io.WriteString(output, "  ")

	if attr.ByteCode {
		io.WriteString(output, fmt.Sprintf("%-8s  ", e.Bytecode))
	}

	io.WriteString(output, e.Operator)
	if e.Operand != "" {
		io.WriteString(output, " ")
		io.WriteString(output, e.Operand)
	}

	if attr.Cycles && e.Result.Defn.IsDefined() {
		io.WriteString(output, fmt.Sprintf(" [%d]", e.Result.Cycles))
		if e.Result.PageFault {
			io.WriteString(output, " page-fault")
		}
	}

	io.WriteString(output, "\n")
}
