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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher1/hardware/cpu/registers"
	"github.com/jetsetilly/gopher1/hardware/cpu/registers/rtest"
	"github.com/jetsetilly/gopher1/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	rtest.EquateRegisters(t, r8, 0)

	// loading & addition
	r8.Load(127)
	rtest.EquateRegisters(t, r8, 127)
	carry, overflow = r8.Add(2, false)
	rtest.EquateRegisters(t, r8, 129)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)

	// addition boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(254)
	carry, _ = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	rtest.EquateRegisters(t, r8, 0)

	r8.Load(255)
	carry, _ = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	rtest.EquateRegisters(t, r8, 1)

	// subtraction
	r8.Load(11)
	carry, _ = r8.Subtract(1, true)
	rtest.EquateRegisters(t, r8, 10)
	test.ExpectEquality(t, carry, true)

	r8.Load(12)
	r8.Subtract(1, false)
	rtest.EquateRegisters(t, r8, 10)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	rtest.EquateRegisters(t, r8, 255)
	test.ExpectEquality(t, carry, false)

	// signed overflow when subtracting
	r8.Load(0x80)
	_, overflow = r8.Subtract(1, true)
	rtest.EquateRegisters(t, r8, 0x7f)
	test.ExpectEquality(t, overflow, true)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	rtest.EquateRegisters(t, r8, 0x01)
	r8.EOR(0xff)
	rtest.EquateRegisters(t, r8, 0xfe)
	r8.ORA(0x1)
	rtest.EquateRegisters(t, r8, 0xff)

	// shifts
	carry = r8.ASL()
	rtest.EquateRegisters(t, r8, 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.LSR()
	rtest.EquateRegisters(t, r8, 0x7f)
	test.ExpectEquality(t, carry, false)
	carry = r8.LSR()
	test.ExpectEquality(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	rtest.EquateRegisters(t, r8, 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.ROR(true)
	rtest.EquateRegisters(t, r8, 0xff)
	test.ExpectEquality(t, carry, false)
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0x40, "test")

	carry, zero, sign := r8.Compare(0x40)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, true)
	test.ExpectEquality(t, sign, false)

	carry, zero, sign = r8.Compare(0x41)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, sign, true)

	// register is unchanged
	rtest.EquateRegisters(t, r8, 0x40)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x00)

	// pushing from the bottom of the stack wraps to the top
	test.ExpectEquality(t, sp.Push(), uint16(0x0100))
	rtest.EquateRegisters(t, sp, 0xff)

	test.ExpectEquality(t, sp.Pop(), uint16(0x0100))
	test.ExpectEquality(t, sp.Pop(), uint16(0x0101))
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	rtest.EquateRegisters(t, sr, 0x20)
	rtest.EquateStatus(t, sr, "nv-bdizc")

	sr.Reset()
	rtest.EquateRegisters(t, sr, 0x30)
	rtest.EquateStatus(t, sr, "nv-Bdizc")

	sr.Load(0xff)
	rtest.EquateStatus(t, sr, "NV-BDIZC")
	rtest.EquateRegisters(t, sr, 0xff)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x10ff)
	test.ExpectEquality(t, pc.Add(1), true)
	rtest.EquateRegisters(t, pc, 0x1100)

	pc.Load(0xffff)
	test.ExpectEquality(t, pc.Add(1), true)
	rtest.EquateRegisters(t, pc, 0x0000)
}
