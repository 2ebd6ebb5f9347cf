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

package console

import (
	"io"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/jetsetilly/gopher1/curated"
	"github.com/jetsetilly/gopher1/display"
	"github.com/pkg/term/termios"
	"golang.org/x/term"
)

// number of bytes that can be typed ahead of the emulation
const keysBuffer = 256

// how long to wait before trying to read from the terminal again when there
// was nothing to read
const pollInterval = 5 * time.Millisecond

// Console is a terminal based keyboard and display for the Apple-1.
type Console struct {
	in  *os.File
	out io.Writer
	fd  int

	printer *display.Printer

	// original state of the terminal. nil if the terminal has not been put
	// into raw mode
	oldState    *term.State
	nonblockSet bool

	keys    chan uint8
	stopCh  chan struct{}
	done    chan struct{}
	started bool
	stopped sync.Once
}

// NewConsole is the preferred method of initialisation for the Console type.
// The input file will usually be os.Stdin.
func NewConsole(in *os.File, out io.Writer) *Console {
	return &Console{
		in:      in,
		out:     out,
		fd:      int(in.Fd()),
		printer: display.NewPrinter(out),
		keys:    make(chan uint8, keysBuffer),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start reading from the terminal. If the input is a terminal then it is put
// into raw mode.
func (con *Console) Start() error {
	if con.started {
		return curated.Errorf("console: already started")
	}

	if term.IsTerminal(con.fd) {
		oldState, err := term.MakeRaw(con.fd)
		if err != nil {
			return curated.Errorf("console: %v", err)
		}
		con.oldState = oldState

		// the terminal no longer translates newline characters
		con.printer.SetNewline("\r\n")
	}

	if err := syscall.SetNonblock(con.fd, true); err != nil {
		con.restore()
		return curated.Errorf("console: %v", err)
	}
	con.nonblockSet = true
	con.started = true

	go con.read()

	return nil
}

func (con *Console) read() {
	defer close(con.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-con.stopCh:
			return
		default:
		}

		n, err := syscall.Read(con.fd, buf)
		if n > 0 {
			select {
			case con.keys <- buf[0]:
			case <-con.stopCh:
				return
			}
			continue
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK || (err == nil && n == 0) {
			time.Sleep(pollInterval)
			continue
		}
		if err != nil {
			return
		}
	}
}

// Keys returns the channel on which bytes typed at the terminal are sent.
func (con *Console) Keys() <-chan uint8 {
	return con.keys
}

// Output implements the pia.Display interface.
func (con *Console) Output(v uint8) {
	con.printer.Output(v)
}

// Flush discards anything that has been typed but not yet read by the
// emulation.
func (con *Console) Flush() {
	if con.oldState != nil {
		_ = termios.Tcflush(uintptr(con.fd), termios.TCIFLUSH)
	}
	for {
		select {
		case <-con.keys:
		default:
			return
		}
	}
}

// Stop reading from the terminal and restore it to its original state. Safe
// to call more than once.
func (con *Console) Stop() {
	if !con.started {
		return
	}
	con.stopped.Do(func() {
		close(con.stopCh)
		<-con.done
		con.restore()
	})
}

func (con *Console) restore() {
	if con.nonblockSet {
		_ = syscall.SetNonblock(con.fd, false)
		con.nonblockSet = false
	}
	if con.oldState != nil {
		_ = term.Restore(con.fd, con.oldState)
		con.oldState = nil
		_, _ = io.WriteString(con.out, "\r\n")
	}
}
