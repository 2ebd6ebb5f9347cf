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

package display

// the Signetics 2513 character generator has 64 characters. lower case codes
// select the upper case characters and control codes select nothing.
const charset = "                                 !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_"

// CarriageReturn moves the cursor to the start of the next line.
const CarriageReturn = 0x0d

// Translate a value written to the display register into the character that
// the Apple-1 would show. Bit 7 is ignored. Returns false for control codes,
// which show nothing.
func Translate(v uint8) (byte, bool) {
	v &= 0x7f
	if v < 0x20 {
		return 0, false
	}
	return charset[v], true
}
