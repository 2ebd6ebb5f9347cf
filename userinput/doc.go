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

// Package userinput translates key presses from the host into Apple-1
// keystrokes and emulator requests. It is used by every front end (the
// terminal console, the graphical window and the script runner) so that keys
// behave in the same way regardless of how the emulator is being driven.
//
// Translation follows the Apple-1 keyboard: there are no lower case letters,
// only the codes 0x20 to 0x5f are printable and the monitor uses the
// underscore character as a rubout.
//
// Key presses that are intended for the emulator rather than the Apple-1 (reset,
// quit and paste) are returned as an Action.
//
// Keystrokes that arrive faster than the emulated program reads them are held
// in a Queue and delivered one at a time whenever the keyboard latch is empty.
package userinput
