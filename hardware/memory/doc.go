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

// Package memory implements the system bus of the Apple-1. The CPU accesses
// memory through the cpubus.Memory interface, which the Memory type
// implements:
//
//	CPU ---- cpu bus ---- MEMORY ---- PIA ---- Display
//	                        |          \
//	                        |           \---- Keyboard
//	                        |
//	                         ---- ACI ---- Storage
//
// The address space is divided into areas, defined in the memorymap package.
// RAM is the only area the CPU can write to. The ROM areas are read only and
// all other writes are discarded, except for writes to the display register of
// the PIA and the ACI save trigger.
//
// Side effect free access to memory is provided by the Peek() and Poke()
// functions. These are used by the ACI to load and save data, as well as by
// the disassembler and scripting.
package memory
