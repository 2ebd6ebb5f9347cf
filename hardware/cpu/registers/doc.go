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

// Package registers implements the three types of registers found in the 6502:
// the 8bit Register (used for A, X and Y), the 16bit ProgramCounter and the
// StatusRegister. The StackPointer is a specialised 8bit register that
// addresses page one of memory.
//
// The Register type implements the arithmetic and logical operations of the
// 6502 but does not touch the StatusRegister. The CPU is responsible for
// setting the flags from the values returned by the register operations. For
// example:
//
//	carry, overflow := a.Add(v, sr.Carry)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// Binary coded decimal arithmetic is provided by the AddDecimal() and
// SubtractDecimal() functions.
package registers
