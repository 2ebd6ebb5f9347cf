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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case ACI:
		return "ACI"
	case ACIROM:
		return "ACI ROM"
	case PIA:
		return "PIA"
	case Monitor:
		return "Monitor ROM"
	}

	return "undefined"
}

// The different memory areas in the Apple-1. Undefined areas read as whatever
// is stored at the address and ignore writes.
const (
	Undefined Area = iota
	RAM
	ACI
	ACIROM
	PIA
	Monitor
)

// The origin and memory top for each area of memory.
const (
	OriginRAM = uint16(0x0000)
	MemtopRAM = uint16(0x7fff)

	OriginACIROM = uint16(0xc100)
	MemtopACIROM = uint16(0xc1ff)

	OriginPIA = uint16(0xd010)
	MemtopPIA = uint16(0xd013)

	OriginMonitor = uint16(0xff00)
	MemtopMonitor = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// PIA registers.
const (
	KBD   = uint16(0xd010)
	KBDCR = uint16(0xd011)
	DSP   = uint16(0xd012)
	DSPCR = uint16(0xd013)
)

// ACI trigger addresses. Reading ACILoad loads a tape into memory. Writing to
// ACISave saves a range of memory to tape.
const (
	ACILoad = uint16(0xc081)
	ACISave = uint16(0xc028)
)

// Zero page pointers used by the monitor and read by the ACI triggers. XAM is
// the destination of a load and the end of a save. ST is the start of a save.
const (
	XAM = uint16(0x0024)
	ST  = uint16(0x0026)
)

// MapAddress returns the area of memory the address belongs to.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopRAM:
		return RAM
	case address == ACILoad || address == ACISave:
		return ACI
	case address >= OriginACIROM && address <= MemtopACIROM:
		return ACIROM
	case address >= OriginPIA && address <= MemtopPIA:
		return PIA
	case address >= OriginMonitor:
		return Monitor
	}
	return Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	return MapAddress(address) == area
}
