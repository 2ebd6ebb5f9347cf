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

// Action is a request to the emulator caused by a key press.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionReset
	ActionQuit
	ActionPaste
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	case ActionPaste:
		return "paste"
	}
	return "unknown action"
}

// Event is the result of translating a host key press. Key is only valid if
// Action is ActionNone.
type Event struct {
	Key    uint8
	Action Action
}

// host key codes with special meaning.
const (
	hostCtrlC     = 0x03
	hostBackspace = 0x08
	hostTab       = 0x09
	hostLineFeed  = 0x0a
	hostCarriage  = 0x0d
	hostCtrlV     = 0x16
	hostEscape    = 0x1b
	hostDelete    = 0x7f
)

// Apple-1 key codes. Bit 7 is added by the keyboard latch.
const (
	KeyReturn = 0x0d
	KeyEscape = 0x1b
	KeyRubout = '_'
)

// Translate a byte from the host keyboard. Returns false if the byte has no
// meaning to the Apple-1 or the emulator.
func Translate(b uint8) (Event, bool) {
	switch b {
	case hostCtrlC:
		return Event{Action: ActionQuit}, true
	case hostCtrlV:
		return Event{Action: ActionPaste}, true
	case hostTab:
		return Event{Action: ActionReset}, true
	case hostBackspace, hostDelete:
		return Event{Key: KeyRubout}, true
	case hostCarriage, hostLineFeed:
		return Event{Key: KeyReturn}, true
	case hostEscape:
		return Event{Key: KeyEscape}, true
	}

	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}

	if b >= 0x20 && b <= 0x5f {
		return Event{Key: b}, true
	}

	return Event{}, false
}

// TranslateRune is the same as Translate() but for runes. Runes outside of
// the ASCII range are not translated.
func TranslateRune(r rune) (Event, bool) {
	if r <= 0 || r > 0x7f {
		return Event{}, false
	}
	return Translate(uint8(r))
}

// PasteLimit is the maximum number of keystrokes that will be taken from a
// single paste.
const PasteLimit = 4096

// NormalisePaste converts text taken from the host clipboard into Apple-1
// keystrokes. Line endings of any kind become a single carriage return and
// bytes that do not translate to a keystroke are dropped. The result is
// truncated to PasteLimit keystrokes.
func NormalisePaste(raw []byte) []uint8 {
	keys := make([]uint8, 0, min(len(raw), PasteLimit))
	for i := 0; i < len(raw) && len(keys) < PasteLimit; i++ {
		if raw[i] == hostCarriage && i+1 < len(raw) && raw[i+1] == hostLineFeed {
			i++
		}
		ev, ok := Translate(raw[i])
		if ok && ev.Action == ActionNone {
			keys = append(keys, ev.Key)
		}
	}
	return keys
}
