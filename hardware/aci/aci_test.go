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

package aci_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher1/hardware/aci"
	"github.com/jetsetilly/gopher1/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher1/logger"
	"github.com/jetsetilly/gopher1/test"
)

type mockMem [0x10000]uint8

func (m *mockMem) Peek(address uint16) uint8 {
	return m[address]
}

func (m *mockMem) Poke(address uint16, value uint8) {
	m[address] = value
}

func (m *mockMem) pointer(address uint16, value uint16) {
	m[address] = uint8(value)
	m[address+1] = uint8(value >> 8)
}

type mockStorage struct {
	data []uint8
	dest uint16

	saved      []uint8
	start, end uint16
	saveCalls  int
	err        error
}

func (s *mockStorage) Load(dest uint16) []uint8 {
	s.dest = dest
	return s.data
}

func (s *mockStorage) Save(start uint16, end uint16, data []uint8) error {
	s.saveCalls++
	s.start = start
	s.end = end
	s.saved = data
	return s.err
}

func TestLoad(t *testing.T) {
	mem := &mockMem{}
	st := &mockStorage{data: []uint8{0xa9, 0x01, 0x60}}
	a := aci.NewACI(logger.Allow, st)

	mem.pointer(memorymap.XAM, 0x0300)
	test.ExpectEquality(t, a.Load(mem), 0x00)
	test.ExpectEquality(t, st.dest, 0x0300)
	test.ExpectEquality(t, mem[0x0300], 0xa9)
	test.ExpectEquality(t, mem[0x0301], 0x01)
	test.ExpectEquality(t, mem[0x0302], 0x60)
	test.ExpectEquality(t, mem[0x0303], 0x00)
}

func TestLoadTruncated(t *testing.T) {
	mem := &mockMem{}
	st := &mockStorage{data: []uint8{1, 2, 3, 4}}
	a := aci.NewACI(logger.Allow, st)

	mem.pointer(memorymap.XAM, 0xfffe)
	a.Load(mem)
	test.ExpectEquality(t, mem[0xfffe], 1)
	test.ExpectEquality(t, mem[0xffff], 2)

	// no wrap around to zero page
	test.ExpectEquality(t, mem[0x0000], 0x00)
	test.ExpectEquality(t, mem[0x0001], 0x00)
}

func TestLoadNothing(t *testing.T) {
	mem := &mockMem{}
	mem[0x0300] = 0xff
	mem.pointer(memorymap.XAM, 0x0300)

	a := aci.NewACI(logger.Allow, &mockStorage{})
	test.ExpectEquality(t, a.Load(mem), 0x00)
	test.ExpectEquality(t, mem[0x0300], 0xff)

	a = aci.NewACI(logger.Allow, nil)
	test.ExpectEquality(t, a.Load(mem), 0x00)
}

func TestSave(t *testing.T) {
	mem := &mockMem{}
	for i := range 0x10 {
		mem[0x0400+i] = uint8(i)
	}

	st := &mockStorage{}
	a := aci.NewACI(logger.Allow, st)

	// inclusive range
	mem.pointer(memorymap.ST, 0x0400)
	mem.pointer(memorymap.XAM, 0x040f)
	a.Save(mem)
	test.ExpectEquality(t, st.saveCalls, 1)
	test.ExpectEquality(t, st.start, 0x0400)
	test.ExpectEquality(t, st.end, 0x040f)
	test.ExpectEquality(t, len(st.saved), 16)
	test.ExpectEquality(t, st.saved[15], 0x0f)

	// single byte
	mem.pointer(memorymap.XAM, 0x0400)
	a.Save(mem)
	test.ExpectEquality(t, st.saveCalls, 2)
	test.ExpectEquality(t, len(st.saved), 1)

	// end before start is ignored
	mem.pointer(memorymap.XAM, 0x03ff)
	a.Save(mem)
	test.ExpectEquality(t, st.saveCalls, 2)
}

func TestSaveError(t *testing.T) {
	mem := &mockMem{}
	st := &mockStorage{err: errors.New("disk full")}
	a := aci.NewACI(logger.Allow, st)

	mem.pointer(memorymap.ST, 0x0000)
	mem.pointer(memorymap.XAM, 0x0001)

	logger.Clear()
	a.Save(mem)
	test.ExpectEquality(t, st.saveCalls, 1)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "aci: disk full\n")
}
