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
	"io"
	"sync"
)

// Printer writes characters from the display register to an io.Writer. A
// carriage return is written as the newline sequence, which defaults to "\n".
type Printer struct {
	crit    sync.Mutex
	w       io.Writer
	newline []byte
	err     error
}

// NewPrinter is the preferred method of initialisation for the Printer type.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:       w,
		newline: []byte{'\n'},
	}
}

// SetNewline changes the sequence written for a carriage return. A terminal
// in raw mode needs "\r\n".
func (p *Printer) SetNewline(nl string) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.newline = []byte(nl)
}

// Output implements the pia.Display interface. The first write error is kept
// and subsequent output is discarded.
func (p *Printer) Output(v uint8) {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.err != nil {
		return
	}

	if v&0x7f == CarriageReturn {
		_, p.err = p.w.Write(p.newline)
		return
	}

	if ch, ok := Translate(v); ok {
		_, p.err = p.w.Write([]byte{ch})
	}
}

// Err returns the first error encountered when writing to the io.Writer.
func (p *Printer) Err() error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.err
}
