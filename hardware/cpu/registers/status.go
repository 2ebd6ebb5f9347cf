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

import (
	"strings"
)

// Bit values of the status register when it is represented as a byte.
const (
	Negative         uint8 = 0x80
	Overflow         uint8 = 0x40
	Unused           uint8 = 0x20
	Break            uint8 = 0x10
	Decimal          uint8 = 0x08
	InterruptDisable uint8 = 0x04
	Zero             uint8 = 0x02
	Carry            uint8 = 0x01
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, on, off rune) {
		if set {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to the power-on state. Only the break flag is set.
func (sr *StatusRegister) Reset() {
	sr.Load(Break)
}

// Value converts the StatusRegister struct into a byte. The unused bit is
// always set.
func (sr StatusRegister) Value() uint8 {
	v := Unused

	if sr.Sign {
		v |= Negative
	}
	if sr.Overflow {
		v |= Overflow
	}
	if sr.Break {
		v |= Break
	}
	if sr.DecimalMode {
		v |= Decimal
	}
	if sr.InterruptDisable {
		v |= InterruptDisable
	}
	if sr.Zero {
		v |= Zero
	}
	if sr.Carry {
		v |= Carry
	}

	return v
}

// Load converts an 8 bit value (taken from the stack, for example) into the
// StatusRegister flags.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&Negative == Negative
	sr.Overflow = v&Overflow == Overflow
	sr.Break = v&Break == Break
	sr.DecimalMode = v&Decimal == Decimal
	sr.InterruptDisable = v&InterruptDisable == InterruptDisable
	sr.Zero = v&Zero == Zero
	sr.Carry = v&Carry == Carry
}
