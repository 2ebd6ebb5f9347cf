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

//go:build headless

package window

import (
	"github.com/jetsetilly/gopher1/curated"
	"github.com/jetsetilly/gopher1/display"
)

// Available is true if the program has been built with support for the
// window.
const Available = false

// Window is not available in headless builds.
type Window struct {
	quit chan struct{}
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(_ *display.Screen, _ int) *Window {
	return &Window{quit: make(chan struct{})}
}

// Keys implements the playmode.Keyboard interface. No keys are ever sent.
func (win *Window) Keys() <-chan uint8 {
	return nil
}

// Quit returns a channel that is closed when the window has been closed.
func (win *Window) Quit() <-chan struct{} {
	return win.quit
}

// Close the window.
func (win *Window) Close() {
}

// Run always returns an error in headless builds.
func (win *Window) Run() error {
	return curated.Errorf("window: not available in headless build")
}
