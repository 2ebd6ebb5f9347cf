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

// Package pia implements the keyboard and display side of the 6820 PIA as it
// is used in the Apple-1.
//
// The keyboard is a latch. The host delivers a key with KeyPressed() and the
// CPU consumes it by reading KBD. Only one key is ever waiting.
//
// The display becomes ready when the monitor writes 0x7f to DSP. After that,
// every write to DSP is forwarded to the Display collaborator. Reading DSP
// returns whatever is on the floating bus, which the monitor tests for bit 7
// before writing each character.
package pia
