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

// Package rtest contains helper functions for testing registers.
package rtest

import (
	"testing"

	"github.com/jetsetilly/gopher1/hardware/cpu/registers"
)

// register types that can be compared by EquateRegisters.
type register interface {
	registers.Register | registers.ProgramCounter | registers.StackPointer | registers.StatusRegister
}

// EquateRegisters is used to test equality between the value of a register
// and an integer. The integer is the expected value.
func EquateRegisters[T register](t *testing.T, r T, expected int) {
	t.Helper()

	var v int
	var label string

	switch r := any(r).(type) {
	case registers.Register:
		v = int(r.Value())
		label = r.Label()
	case registers.ProgramCounter:
		v = int(r.Address())
		label = r.Label()
	case registers.StackPointer:
		v = int(r.Value())
		label = r.Label()
	case registers.StatusRegister:
		v = int(r.Value())
		label = r.Label()
	}

	if v != expected {
		t.Errorf("register %s: value is %#02x, expected %#02x", label, v, expected)
	}
}

// EquateStatus tests the status register against a flag string in the same
// form as the String() function of the StatusRegister type. Only the case of
// each letter matters.
func EquateStatus(t *testing.T, sr registers.StatusRegister, expected string) {
	t.Helper()

	if sr.String() != expected {
		t.Errorf("status register is %s, expected %s", sr.String(), expected)
	}
}
