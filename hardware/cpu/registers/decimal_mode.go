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

// AddDecimal adds value to register as though both values are binary coded
// decimal. Returns new carry state, zero, overflow and sign information.
//
// The N and V flags are taken from the binary sum of the unadjusted nibbles.
// The Z flag is taken from the adjusted result so that $99+$01 sets Z.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var adjustUnits, adjustTens uint8
	var halfCarry uint8

	units := r.value&0x0f + val&0x0f
	if carry {
		units++
	}
	if units > 9 {
		adjustUnits = 6
		halfCarry = 1
	}

	tens := r.value>>4 + val>>4 + halfCarry
	if tens > 9 {
		adjustTens = 6
		rcarry = true
	}

	alu := (tens&0x0f)<<4 | units&0x0f

	overflow = ^(r.value^val)&(r.value^alu)&0x80 != 0
	sign = alu&0x80 == 0x80

	r.value = ((tens+adjustTens)&0x0f)<<4 | (units+adjustUnits)&0x0f
	zero = r.value == 0

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both values are
// binary coded decimal. Returns new carry state, zero, overflow and sign
// information.
//
// The N, V and Z flags are all taken from the binary difference. Unlike
// AddDecimal the adjusted result plays no part in the flags.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var adjustUnits, adjustTens uint16
	halfCarry := uint16(1)

	var c uint16
	if carry {
		c = 1
	}

	units := uint16(r.value&0x0f) + uint16(^val&0x0f) + c
	if units <= 0x0f {
		halfCarry = 0
		adjustUnits = 10
	}

	tens := uint16(r.value>>4) + uint16((^val>>4)&0x0f) + halfCarry
	if tens <= 0x0f {
		adjustTens = 10 << 4
	}

	alu := uint16(r.value) + uint16(^val) + c
	rcarry = alu > 0xff
	alu &= 0xff

	overflow = (r.value^val)&(r.value^uint8(alu))&0x80 != 0
	sign = alu&0x80 == 0x80

	zero = alu == 0

	r.value = uint8(((alu+adjustTens)>>4)&0x0f)<<4 | uint8((alu+adjustUnits)&0x0f)

	return rcarry, zero, overflow, sign
}
