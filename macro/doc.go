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

// Package macro automates an Apple-1 with scripts written in Lua. Scripts can
// type text at the keyboard, run the emulation and inspect the machine.
//
// The following functions are available to a script:
//
//	type_text(s)           queue text to be typed at the keyboard
//	run(cycles)            run for at least the number of cycles. returns the
//	                       number of cycles run
//	run_until(s, cycles)   run until the display output contains the string or
//	                       until the number of cycles has been reached. returns
//	                       true if the string was found
//	step()                 run a single instruction. returns the number of
//	                       cycles
//	peek(address)          read memory without side effects
//	poke(address, value)   write memory without side effects
//	reg(name)              value of a CPU register: PC, A, X, Y, SP or P
//	reset([address])       reset the machine. an address overrides the reset
//	                       vector
//	output()               everything written to the display since the start
//	                       of the script or the last call to clear_output()
//	clear_output()         discard the display output
//	cycles()               number of cycles since the last reset
//	load(address, file)    load a tape file directly into memory. returns the
//	                       number of bytes loaded
//	log(s)                 add an entry to the log
//
// Queued text is delivered to the keyboard latch whenever the previous key has
// been read, so text can be typed faster than the monitor reads it.
//
// Text written to the display is also echoed to the io.Writer given to
// NewMacro().
//
// Errors in a script, including calls to the Lua error() function, stop the
// script and are returned by Run() or RunString().
package macro
