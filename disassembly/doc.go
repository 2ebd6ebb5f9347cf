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

// Package disassembly produces human readable disassembly of 6502 machine
// code, using the definitions of the instructions package.
//
// Disassembly is linear. Every address is decoded as though it were the start
// of an instruction and the next address is the address after the instruction.
// For example, to disassemble the Woz Monitor:
//
//	entries := disassembly.Range(mem, 0xff00, 0xffff)
//	disassembly.Write(os.Stdout, entries, disassembly.WriteAttr{ByteCode: true})
//
// An Entry can also be created from the execution.Result of an instruction
// that has been executed, with the FromResult() function.
package disassembly
