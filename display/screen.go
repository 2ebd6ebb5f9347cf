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

import (
	"strings"
	"sync"
)

// Dimensions of the Apple-1 screen.
const (
	Columns = 40
	Rows    = 24
)

// Screen is the contents of the Apple-1 screen. It is safe to write to the
// screen from the emulation goroutine while it is being rendered in another
// goroutine.
type Screen struct {
	crit sync.Mutex

	cells [Rows][Columns]byte
	col   int
	row   int

	// number of characters written since the screen was created. a cheap way
	// for a renderer to know that the screen has changed
	count uint64
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	scr := &Screen{}
	scr.Clear()
	return scr
}

// Clear the screen and move the cursor to the top left.
func (scr *Screen) Clear() {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	for r := range scr.cells {
		for c := range scr.cells[r] {
			scr.cells[r][c] = ' '
		}
	}
	scr.col = 0
	scr.row = 0
	scr.count++
}

// Output implements the pia.Display interface.
func (scr *Screen) Output(v uint8) {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if v&0x7f == CarriageReturn {
		scr.newline()
		scr.count++
		return
	}

	ch, ok := Translate(v)
	if !ok {
		return
	}

	scr.cells[scr.row][scr.col] = ch
	scr.col++
	if scr.col >= Columns {
		scr.newline()
	}
	scr.count++
}

// must be called with the critical section locked.
func (scr *Screen) newline() {
	scr.col = 0
	scr.row++
	if scr.row < Rows {
		return
	}

	scr.row = Rows - 1
	copy(scr.cells[:], scr.cells[1:])
	for c := range scr.cells[scr.row] {
		scr.cells[scr.row][c] = ' '
	}
}

// Cursor returns the column and row of the position where the next character
// will be written.
func (scr *Screen) Cursor() (int, int) {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	return scr.col, scr.row
}

// Count returns a number that changes whenever the screen changes.
func (scr *Screen) Count() uint64 {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	return scr.count
}

// Lines returns a copy of each row of the screen.
func (scr *Screen) Lines() []string {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	lines := make([]string, Rows)
	for r := range scr.cells {
		lines[r] = string(scr.cells[r][:])
	}
	return lines
}

// String returns the screen as one string, with trailing spaces removed from
// each row and empty rows at the bottom of the screen removed.
func (scr *Screen) String() string {
	lines := scr.Lines()
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
