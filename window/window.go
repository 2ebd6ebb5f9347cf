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

//go:build !headless

package window

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/jetsetilly/gopher1/curated"
	"github.com/jetsetilly/gopher1/display"
	"github.com/jetsetilly/gopher1/version"
	"golang.org/x/image/font/basicfont"
)

// Available is true if the program has been built with support for the
// window.
const Available = true

var (
	background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	foreground = color.RGBA{R: 0x33, G: 0xff, B: 0x33, A: 0xff}
)

// Window implements the ebiten.Game interface.
type Window struct {
	screen *display.Screen
	scale  int

	keys chan uint8

	quit     chan struct{}
	quitOnce sync.Once

	closeRequest chan struct{}
	closeOnce    sync.Once

	started time.Time
}

// NewWindow is the preferred method of initialisation for the Window type.
// The scale is the number of screen pixels for each Apple-1 pixel.
func NewWindow(scr *display.Screen, scale int) *Window {
	return &Window{
		screen:       scr,
		scale:        max(scale, 1),
		keys:         make(chan uint8, keysBuffer),
		quit:         make(chan struct{}),
		closeRequest: make(chan struct{}),
	}
}

// Keys implements the playmode.Keyboard interface.
func (win *Window) Keys() <-chan uint8 {
	return win.keys
}

// Quit returns a channel that is closed when the window has been closed.
func (win *Window) Quit() <-chan struct{} {
	return win.quit
}

// Close the window. Safe to call from any goroutine.
func (win *Window) Close() {
	win.closeOnce.Do(func() {
		close(win.closeRequest)
	})
}

// Run opens the window and returns when it is closed. Must be called from the
// main goroutine.
func (win *Window) Run() error {
	defer win.quitOnce.Do(func() { close(win.quit) })

	ebiten.SetWindowSize(Width*win.scale, Height*win.scale)
	ebiten.SetWindowTitle(version.ApplicationName)
	ebiten.SetWindowResizable(true)

	win.started = time.Now()

	if err := ebiten.RunGame(win); err != nil {
		return curated.Errorf("window: %v", err)
	}
	return nil
}

// Update implements the ebiten.Game interface.
func (win *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	select {
	case <-win.closeRequest:
		return ebiten.Termination
	default:
	}

	win.handleKeyboardInput()
	return nil
}

func (win *Window) emit(b uint8) {
	select {
	case win.keys <- b:
	default:
	}
}

func (win *Window) handleKeyboardInput() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	if ctrl {
		// clipboard paste: Ctrl+Shift+V
		if shift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
			win.emit(hostCtrlV)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			win.emit(hostCtrlC)
		}
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if b, ok := runeToHost(r); ok {
			win.emit(b)
		}
	}

	specialKeys := map[ebiten.Key]uint8{
		ebiten.KeyEnter:       hostReturn,
		ebiten.KeyNumpadEnter: hostReturn,
		ebiten.KeyBackspace:   hostBackspace,
		ebiten.KeyTab:         hostTab,
		ebiten.KeyEscape:      hostEscape,
	}
	for key, b := range specialKeys {
		if inpututil.IsKeyJustPressed(key) {
			win.emit(b)
		}
	}
}

// Draw implements the ebiten.Game interface.
func (win *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()

	for row, line := range win.screen.Lines() {
		x, y := cellPosition(0, row)
		text.Draw(screen, line, face, x, y+ascent, foreground)
	}

	if cursorVisible(time.Since(win.started)) {
		col, row := win.screen.Cursor()
		x, y := cellPosition(col, row)
		text.Draw(screen, cursorChar, face, x, y+ascent, foreground)
	}
}

// Layout implements the ebiten.Game interface.
func (win *Window) Layout(_, _ int) (int, int) {
	return Width, Height
}
