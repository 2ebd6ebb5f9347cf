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

package console_test

import (
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/gopher1/console"
	"github.com/jetsetilly/gopher1/test"
)

// returns a console reading from a pipe. the write end of the pipe is returned
// for the test to type into
func newConsole(t *testing.T, out *test.CompareWriter) (*console.Console, *os.File) {
	t.Helper()

	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		_ = w.Close()
		_ = r.Close()
	})

	con := console.NewConsole(r, out)
	test.DemandSuccess(t, con.Start())
	t.Cleanup(con.Stop)

	return con, w
}

func TestKeys(t *testing.T) {
	con, w := newConsole(t, &test.CompareWriter{})

	_, err := w.Write([]byte("a\r"))
	test.DemandSuccess(t, err)

	for _, expected := range []uint8{'a', '\r'} {
		select {
		case b := <-con.Keys():
			test.ExpectEquality(t, b, expected)
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for key")
		}
	}
}

func TestStartTwice(t *testing.T) {
	con, _ := newConsole(t, &test.CompareWriter{})
	test.ExpectFailure(t, con.Start())
}

func TestOutput(t *testing.T) {
	tw := &test.CompareWriter{}
	con, _ := newConsole(t, tw)

	for _, b := range []uint8{0xdc, 0x8d, 0xc1, 0x07} {
		con.Output(b)
	}

	// input is not a terminal so the newline is not translated
	test.ExpectSuccess(t, tw.Compare("\\\nA"), tw.String())
}

func TestPickLoad(t *testing.T) {
	tw := &test.CompareWriter{}
	con, w := newConsole(t, tw)

	_, err := w.Write([]byte("tapx\x7fe.wav\r"))
	test.DemandSuccess(t, err)

	fn, err := con.PickLoad()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "tape.wav")
	test.ExpectSuccess(t, tw.Compare("\nload tape: tapx\b \be.wav\n"), tw.String())
}

func TestPickSave(t *testing.T) {
	con, w := newConsole(t, &test.CompareWriter{})

	_, err := w.Write([]byte("\r"))
	test.DemandSuccess(t, err)
	fn, err := con.PickSave("suggested.wav")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "suggested.wav")

	_, err = w.Write([]byte("prog.bin\r"))
	test.DemandSuccess(t, err)
	fn, err = con.PickSave("suggested.wav")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "prog.bin")

	// escape cancels the save
	_, err = w.Write([]byte("prog\x1b"))
	test.DemandSuccess(t, err)
	fn, err = con.PickSave("suggested.wav")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "")
}

func TestNotStarted(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()
	defer w.Close()

	con := console.NewConsole(r, &test.CompareWriter{})
	_, err = con.PickLoad()
	test.ExpectFailure(t, err)

	// stopping a console that has not started is allowed
	con.Stop()
}

func TestFlush(t *testing.T) {
	con, w := newConsole(t, &test.CompareWriter{})

	_, err := w.Write([]byte("abc"))
	test.DemandSuccess(t, err)

	// wait for the reader to take the bytes from the pipe
	deadline := time.Now().Add(time.Second)
	for len(con.Keys()) < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	con.Flush()
	test.ExpectEquality(t, len(con.Keys()), 0)
}
