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

import "sync"

// Keyboard is the keyboard latch of the emulated machine. The hardware.Apple1
// type satisfies this interface.
type Keyboard interface {
	KeyPressed(key uint8)
	KeyWaiting() bool
}

// Queue holds keystrokes until the keyboard latch is free. It is safe to push
// keys from one goroutine while delivering them from another.
type Queue struct {
	crit sync.Mutex
	keys []uint8
}

// Push keystrokes onto the end of the queue.
func (q *Queue) Push(keys ...uint8) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.keys = append(q.keys, keys...)
}

// PushText translates each byte of the string and pushes the resulting
// keystrokes. Bytes that translate to an Action are ignored.
func (q *Queue) PushText(s string) {
	q.Push(NormalisePaste([]byte(s))...)
}

// Len returns the number of keystrokes waiting in the queue.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.keys)
}

// Clear removes all keystrokes from the queue.
func (q *Queue) Clear() {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.keys = q.keys[:0]
}

// Deliver the next keystroke to the keyboard if the previous keystroke has
// been read. Returns true if a keystroke was delivered.
func (q *Queue) Deliver(kbd Keyboard) bool {
	q.crit.Lock()
	defer q.crit.Unlock()

	if len(q.keys) == 0 || kbd.KeyWaiting() {
		return false
	}

	kbd.KeyPressed(q.keys[0])
	q.keys = q.keys[1:]
	return true
}
