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

// Package display emulates the video section of the Apple-1. Characters
// written to the display register of the PIA are rendered through the
// Signetics 2513 character generator onto a screen of 40 columns and 24 rows.
//
// The Screen type keeps the contents of the screen for graphical front ends.
// The Printer type writes the characters to an io.Writer and is used by the
// terminal console and by the script runner.
//
// Both types implement the pia.Display interface.
package display
