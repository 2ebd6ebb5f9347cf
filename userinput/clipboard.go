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

package userinput

import (
	"sync"

	"golang.design/x/clipboard"
)

var clip struct {
	once sync.Once
	ok   bool
}

// Clipboard returns the text in the host clipboard as Apple-1 keystrokes. See
// NormalisePaste() for details. Returns nil if the clipboard is not available.
func Clipboard() []uint8 {
	clip.once.Do(func() {
		clip.ok = clipboard.Init() == nil
	})
	if !clip.ok {
		return nil
	}

	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil
	}
	return NormalisePaste(data)
}
