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

// Package playmode runs an Apple-1 interactively. Key presses from the host
// are translated into Apple-1 keystrokes and queued for the keyboard latch.
// The emulation runs until the user quits or the program is interrupted.
//
// Some key presses are requests to the emulator rather than keystrokes. See
// the userinput package for details.
package playmode
