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

package aci

import (
	"github.com/jetsetilly/gopher1/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher1/logger"
)

// Storage is the collaborator that provides and accepts tape data. It is
// responsible for choosing a file and reporting any problems to the user.
type Storage interface {
	// Load returns the data to be placed in memory at dest. A nil or empty
	// slice indicates that nothing was loaded.
	Load(dest uint16) []uint8

	// Save the data read from the inclusive range start to end.
	Save(start uint16, end uint16, data []uint8) error
}

// Memory is the side effect free access to memory required by the ACI.
type Memory interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}

// ACI implements the storage triggers of the Apple Cassette Interface.
type ACI struct {
	env     logger.Permission
	storage Storage
}

// NewACI is the preferred method of initialisation for the ACI type. A nil
// storage disables loading and saving.
func NewACI(env logger.Permission, storage Storage) *ACI {
	return &ACI{
		env:     env,
		storage: storage,
	}
}

// Plumb a new storage collaborator into the ACI.
func (aci *ACI) Plumb(storage Storage) {
	aci.storage = storage
}

// read a little-endian pointer from zero page
func pointer(mem Memory, address uint16) uint16 {
	return uint16(mem.Peek(address)) | uint16(mem.Peek(address+1))<<8
}

// Load is called when the CPU reads the load trigger. The destination address
// is taken from the XAM pointer in zero page. Data that would extend past the
// top of memory is truncated. The return value is the value the CPU sees for
// the read.
func (aci *ACI) Load(mem Memory) uint8 {
	if aci.storage == nil {
		return 0
	}

	dest := pointer(mem, memorymap.XAM)
	data := aci.storage.Load(dest)
	if len(data) == 0 {
		return 0
	}

	n := min(len(data), int(memorymap.Memtop)-int(dest)+1)
	for i := range n {
		mem.Poke(dest+uint16(i), data[i])
	}

	if n < len(data) {
		logger.Logf(aci.env, "aci", "load truncated to %d bytes", n)
	}
	logger.Logf(aci.env, "aci", "loaded %d bytes at %04x", n, dest)

	return 0
}

// Save is called when the CPU writes to the save trigger. The range is taken
// from the ST and XAM pointers in zero page. Nothing is saved if the end of
// the range is before the start.
func (aci *ACI) Save(mem Memory) {
	if aci.storage == nil {
		return
	}

	start := pointer(mem, memorymap.ST)
	end := pointer(mem, memorymap.XAM)
	if end < start {
		logger.Logf(aci.env, "aci", "save range is empty (%04x to %04x)", start, end)
		return
	}

	data := make([]uint8, int(end)-int(start)+1)
	for i := range data {
		data[i] = mem.Peek(start + uint16(i))
	}

	if err := aci.storage.Save(start, end, data); err != nil {
		logger.Log(aci.env, "aci", err)
		return
	}

	logger.Logf(aci.env, "aci", "saved %04x to %04x", start, end)
}
