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

package display_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher1/display"
	"github.com/jetsetilly/gopher1/test"
)

func output(d interface{ Output(uint8) }, s string) {
	for _, c := range []byte(s) {
		d.Output(c | 0x80)
	}
}

func TestTranslate(t *testing.T) {
	ch, ok := display.Translate('A')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ch, 'A')

	ch, ok = display.Translate('a')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ch, 'A')

	ch, ok = display.Translate('`')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ch, '@')

	ch, ok = display.Translate(0xdc)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ch, '\\')

	ch, ok = display.Translate(0x7f)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ch, '_')

	_, ok = display.Translate(0x8d)
	test.ExpectFailure(t, ok)
	_, ok = display.Translate(0x07)
	test.ExpectFailure(t, ok)
}

func TestPrinter(t *testing.T) {
	tw := &test.CompareWriter{}
	p := display.NewPrinter(tw)

	output(p, "\\\r")
	test.ExpectSuccess(t, tw.Compare("\\\n"), tw.String())

	tw.Clear()
	output(p, "hello\x07\r")
	test.ExpectSuccess(t, tw.Compare("HELLO\n"), tw.String())

	tw.Clear()
	p.SetNewline("\r\n")
	output(p, "A\rB")
	test.ExpectSuccess(t, tw.Compare("A\r\nB"), tw.String())
	test.ExpectSuccess(t, p.Err())
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("write failed")
}

func TestPrinterError(t *testing.T) {
	w := &failingWriter{}
	p := display.NewPrinter(w)
	output(p, "ABC")
	test.ExpectFailure(t, p.Err())
	test.ExpectEquality(t, w.n, 1)
}

func TestScreen(t *testing.T) {
	scr := display.NewScreen()
	test.ExpectEquality(t, scr.String(), "")

	output(scr, "\\\rFF00: D8")
	test.ExpectEquality(t, scr.String(), "\\\nFF00: D8")

	col, row := scr.Cursor()
	test.ExpectEquality(t, col, 8)
	test.ExpectEquality(t, row, 1)

	scr.Clear()
	col, row = scr.Cursor()
	test.ExpectEquality(t, col, 0)
	test.ExpectEquality(t, row, 0)
}

func TestScreenWrap(t *testing.T) {
	scr := display.NewScreen()
	output(scr, strings.Repeat("A", display.Columns)+"B")

	lines := scr.Lines()
	test.ExpectEquality(t, lines[0], strings.Repeat("A", display.Columns))
	test.ExpectEquality(t, strings.TrimRight(lines[1], " "), "B")
}

func TestScreenScroll(t *testing.T) {
	scr := display.NewScreen()
	for i := 0; i < display.Rows; i++ {
		output(scr, string(rune('A'+i))+"\r")
	}

	// the first line has scrolled off the top of the screen
	lines := scr.Lines()
	test.ExpectEquality(t, strings.TrimRight(lines[0], " "), "B")
	test.ExpectEquality(t, strings.TrimRight(lines[display.Rows-2], " "), "X")
	test.ExpectEquality(t, strings.TrimRight(lines[display.Rows-1], " "), "")

	col, row := scr.Cursor()
	test.ExpectEquality(t, col, 0)
	test.ExpectEquality(t, row, display.Rows-1)
}

func TestScreenCount(t *testing.T) {
	scr := display.NewScreen()
	c := scr.Count()
	scr.Output(0x07)
	test.ExpectEquality(t, scr.Count(), c)
	scr.Output('A')
	test.ExpectInequality(t, scr.Count(), c)
}
