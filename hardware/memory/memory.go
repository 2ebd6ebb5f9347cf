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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher1/hardware/aci"
	"github.com/jetsetilly/gopher1/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher1/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher1/hardware/pia"
)

// Memory is the system bus of the Apple-1. It owns the address space and
// dispatches reads and writes to the PIA and ACI.
type Memory struct {
	// the entire address space, including the ROM areas
	data [int(memorymap.Memtop) + 1]uint8

	PIA *pia.PIA
	ACI *aci.ACI
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// ROM areas are empty until LoadROMs() is called.
func NewMemory(p *pia.PIA, a *aci.ACI) *Memory {
	return &Memory{
		PIA: p,
		ACI: a,
	}
}

// Read is an implementation of cpubus.Memory. Reads of the PIA registers and
// the ACI load trigger have side effects.
func (mem *Memory) Read(address uint16) uint8 {
	switch memorymap.MapAddress(address) {
	case memorymap.PIA:
		return mem.PIA.Read(address)
	case memorymap.ACI:
		if address == memorymap.ACILoad {
			return mem.ACI.Load(mem)
		}
	}
	return mem.data[address]
}

// Write is an implementation of cpubus.Memory. Only writes to RAM are stored.
// Writes to DSP are forwarded to the PIA and a write to the ACI save trigger
// starts a save.
func (mem *Memory) Write(address uint16, value uint8) {
	switch memorymap.MapAddress(address) {
	case memorymap.RAM:
		mem.data[address] = value
	case memorymap.PIA:
		mem.PIA.Write(address, value)
	case memorymap.ACI:
		if address == memorymap.ACISave {
			mem.ACI.Save(mem)
		}
	}
}

// Peek returns the value at the address without side effects. PIA registers
// are peeked through the PIA.
func (mem *Memory) Peek(address uint16) uint8 {
	if memorymap.IsArea(address, memorymap.PIA) {
		return mem.PIA.Peek(address)
	}
	return mem.data[address]
}

// Poke writes a value to any address, including the ROM areas, without side
// effects. Pokes to the PIA registers are ignored.
func (mem *Memory) Poke(address uint16, value uint8) {
	if memorymap.IsArea(address, memorymap.PIA) {
		return
	}
	mem.data[address] = value
}

// Load copies data into memory, starting at the origin address. Data that
// would extend past the top of memory is dropped. Returns the number of bytes
// copied.
func (mem *Memory) Load(origin uint16, data []uint8) int {
	n := min(len(data), int(memorymap.Memtop)-int(origin)+1)
	for i := range n {
		mem.Poke(origin+uint16(i), data[i])
	}
	return n
}

// LoadROMs installs the monitor and ACI ROM images and seeds the interrupt
// vectors. The monitor image is placed so that it ends at the top of memory and
// the ACI image at the origin of the ACI ROM area.
//
// Once the images are installed the NMI and IRQ vectors point to zero and the
// reset vector points to the origin of the monitor.
func (mem *Memory) LoadROMs(monitor []uint8, aciROM []uint8) {
	if len(monitor) > 0 {
		mem.Load(memorymap.Memtop-uint16(len(monitor)-1), monitor)
	}
	if len(aciROM) > 0 {
		mem.Load(memorymap.OriginACIROM, aciROM)
	}

	mem.pokeVector(cpubus.NMI, 0x0000)
	mem.pokeVector(cpubus.Reset, memorymap.OriginMonitor)
	mem.pokeVector(cpubus.IRQ, 0x0000)
}

func (mem *Memory) pokeVector(address uint16, vector uint16) {
	mem.data[address] = uint8(vector)
	mem.data[address+1] = uint8(vector >> 8)
}

// Dump returns a hex dump of memory, in the format used by the monitor, for
// the inclusive range start to end.
func (mem *Memory) Dump(start uint16, end uint16) string {
	s := strings.Builder{}
	a := int(start)
	for a <= int(end) {
		s.WriteString(fmt.Sprintf("%04X:", a))
		for i := 0; i < 8 && a <= int(end); i++ {
			s.WriteString(fmt.Sprintf(" %02X", mem.Peek(uint16(a))))
			a++
		}
		s.WriteString("\n")
	}
	return s.String()
}
