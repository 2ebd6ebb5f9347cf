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

package window

import (
	"time"

	"github.com/jetsetilly/gopher1/display"
)

// size of a character cell in pixels. the cell is the size of the glyphs in
// basicfont.Face7x13
const (
	cellWidth  = 7
	cellHeight = 13
)

// border around the screen in pixels
const border = 8

// Width and Height of the unscaled window in pixels.
const (
	Width  = display.Columns*cellWidth + border*2
	Height = display.Rows*cellHeight + border*2
)

// the Apple-1 cursor is a flashing @ character
const (
	cursorChar  = "@"
	cursorBlink = 500 * time.Millisecond
)

// cellPosition returns the pixel position of the top left of a character cell
func cellPosition(col int, row int) (int, int) {
	return border + col*cellWidth, border + row*cellHeight
}

// cursorVisible returns true if the cursor should be drawn at the specified
// time since the window was opened
func cursorVisible(t time.Duration) bool {
	return (t/cursorBlink)%2 == 0
}

// keysBuffer is the number of key presses that can be waiting for the
// emulation
const keysBuffer = 256

// host bytes sent for special keys
const (
	hostCtrlC     = 0x03
	hostBackspace = 0x08
	hostTab       = 0x09
	hostReturn    = 0x0d
	hostCtrlV     = 0x16
	hostEscape    = 0x1b
)

// runeToHost returns the host byte for a typed rune. only ASCII is accepted
func runeToHost(r rune) (uint8, bool) {
	if r < 0x20 || r >= 0x7f {
		return 0, false
	}
	return uint8(r), true
}
