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

// Package clocks defines the constant values that define the speed of the main
// clock in the Apple-1.
//
// The 6502 is driven by the 14.31818MHz crystal of the video circuit divided
// by fourteen. Every 65th cycle is stretched for memory refresh but this is
// not emulated.
package clocks

// Clock speeds in MHz.
const (
	Crystal = 14.31818
	Apple1  = Crystal / 14
)

// Clock speed in Hz, rounded down to a whole number of cycles.
const Apple1Hz = 1022727
