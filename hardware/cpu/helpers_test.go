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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher1/hardware/cpu"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putWord(address uint16, value uint16) {
	mem.Write(address, uint8(value))
	mem.Write(address+1, uint8(value>>8))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	clear(mem.internal)
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	return mc.Step()
}
