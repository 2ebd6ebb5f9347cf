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

package registers

import (
	"fmt"
)

// StackPointer is the 8bit SP register. The stack is always in page one of
// memory.
type StackPointer struct {
	value uint8
}

// the stack page
const stackPage = 0x0100

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02X", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address in memory that the stack pointer is pointing to.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push moves the stack pointer down one position. Returns the address that
// should be written to before the move.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pop moves the stack pointer up one position. Returns the address that should
// be read after the move.
func (sp *StackPointer) Pop() uint16 {
	sp.value++
	return sp.Address()
}
