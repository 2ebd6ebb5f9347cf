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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher1/curated"
)

// longest filename that can be typed at the prompt
const maxFilename = 255

// host bytes that have special meaning at the prompt
const (
	promptCtrlC     = 0x03
	promptBackspace = 0x08
	promptEscape    = 0x1b
	promptDelete    = 0x7f
)

func (con *Console) newline() string {
	if con.oldState != nil {
		return "\r\n"
	}
	return "\n"
}

// prompt for a line of text. returns false if the prompt was cancelled by the
// user.
func (con *Console) prompt(msg string) (string, bool, error) {
	if !con.started {
		return "", false, curated.Errorf("console: not started")
	}

	nl := con.newline()
	_, _ = io.WriteString(con.out, nl+msg)

	var s strings.Builder
	for {
		var b uint8
		select {
		case b = <-con.keys:
		case <-con.stopCh:
			return "", false, nil
		}

		switch b {
		case '\r', '\n':
			_, _ = io.WriteString(con.out, nl)
			return strings.TrimSpace(s.String()), true, nil
		case promptEscape, promptCtrlC:
			_, _ = io.WriteString(con.out, " (cancelled)"+nl)
			return "", false, nil
		case promptBackspace, promptDelete:
			if s.Len() > 0 {
				t := s.String()
				s.Reset()
				s.WriteString(t[:len(t)-1])
				_, _ = io.WriteString(con.out, "\b \b")
			}
		default:
			if b >= 0x20 && b < 0x7f && s.Len() < maxFilename {
				s.WriteByte(b)
				_, _ = con.out.Write([]byte{b})
			}
		}
	}
}

// PickLoad implements the cassette.Picker interface.
func (con *Console) PickLoad() (string, error) {
	fn, _, err := con.prompt("load tape: ")
	return fn, err
}

// PickSave implements the cassette.Picker interface. An empty filename
// accepts the suggestion.
func (con *Console) PickSave(suggestion string) (string, error) {
	fn, ok, err := con.prompt(fmt.Sprintf("save tape [%s]: ", suggestion))
	if err != nil || !ok {
		return "", err
	}
	if fn == "" {
		return suggestion, nil
	}
	return fn, nil
}
