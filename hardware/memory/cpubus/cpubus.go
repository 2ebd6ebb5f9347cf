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

// Package cpubus defines the interface through which the CPU accesses memory
// and the addresses of the interrupt vectors.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The System Bus implements this interface and maps each address to RAM,
// ROM or to one of the peripheral registers. The CPU need not care which part
// of memory it is reading from or writing to.
//
// Neither operation can fail. Addresses outside of a mapped area read as the
// stored byte and writes to read-only areas are discarded.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Interrupt vectors. Each is the address of a little-endian word.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
