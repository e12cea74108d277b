// This file is part of Chordpad.
//
// Chordpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chordpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chordpad.  If not, see <https://www.gnu.org/licenses/>.

package evdevinput

import (
	"fmt"

	"github.com/chordpad/chordpad/hotkeys"
	"github.com/chordpad/chordpad/userinput"
)

// linux input event codes and the SDL scancode name for each
var keyNames = map[uint16]string{
	1:   "Escape",
	2:   "1",
	3:   "2",
	4:   "3",
	5:   "4",
	6:   "5",
	7:   "6",
	8:   "7",
	9:   "8",
	10:  "9",
	11:  "0",
	14:  "Backspace",
	15:  "Tab",
	16:  "Q",
	17:  "W",
	18:  "E",
	19:  "R",
	20:  "T",
	21:  "Y",
	22:  "U",
	23:  "I",
	24:  "O",
	25:  "P",
	28:  "Return",
	29:  "Left Ctrl",
	30:  "A",
	31:  "S",
	32:  "D",
	33:  "F",
	34:  "G",
	35:  "H",
	36:  "J",
	37:  "K",
	38:  "L",
	42:  "Left Shift",
	44:  "Z",
	45:  "X",
	46:  "C",
	47:  "V",
	48:  "B",
	49:  "N",
	50:  "M",
	54:  "Right Shift",
	56:  "Left Alt",
	57:  "Space",
	59:  "F1",
	60:  "F2",
	61:  "F3",
	62:  "F4",
	63:  "F5",
	64:  "F6",
	65:  "F7",
	66:  "F8",
	67:  "F9",
	68:  "F10",
	87:  "F11",
	88:  "F12",
	97:  "Right Ctrl",
	100: "Right Alt",
	102: "Home",
	103: "Up",
	104: "PageUp",
	105: "Left",
	106: "Right",
	107: "End",
	108: "Down",
	109: "PageDown",
	110: "Insert",
	111: "Delete",
	116: "Power",
	119: "Pause",
}

var keyCodes map[string]uint16

// keys that the hotkeys detector can synthesize
var synthesized = make(map[string]bool)

func init() {
	keyCodes = make(map[string]uint16, len(keyNames))
	for c, n := range keyNames {
		keyCodes[n] = c
	}
	for _, c := range hotkeys.Combos() {
		if c.Action.Kind == hotkeys.SynthesizeKey {
			synthesized[c.Action.Key] = true
		}
	}
}

// the handheld has no function keys so a function key can only have come
// from the detector
func isSynthesized(key string) bool {
	return synthesized[key]
}

// KeyName returns the key name for a linux key code. Codes without a name are
// formatted as "Key 0x%03x" so that they are still unique.
func KeyName(code uint16) string {
	if n, ok := keyNames[code]; ok {
		return n
	}
	return fmt.Sprintf("Key 0x%03x", code)
}

// KeyCode is the inverse of KeyName() for named keys.
func KeyCode(name string) (uint16, bool) {
	c, ok := keyCodes[name]
	return c, ok
}

// values of EV_KEY events
const (
	valueUp     = 0
	valueDown   = 1
	valueRepeat = 2
)

// keyboardEvent converts the code and value of an EV_KEY event. returns false
// if the value is not recognised
func keyboardEvent(code uint16, value int32) (userinput.EventKeyboard, bool) {
	ev := userinput.EventKeyboard{Key: KeyName(code)}
	switch value {
	case valueUp:
	case valueDown:
		ev.Down = true
	case valueRepeat:
		ev.Down = true
		ev.Repeat = true
	default:
		return userinput.EventKeyboard{}, false
	}
	return ev, true
}

// keyValue is the inverse of keyboardEvent()
func keyValue(ev userinput.EventKeyboard) int32 {
	switch {
	case ev.Repeat:
		return valueRepeat
	case ev.Down:
		return valueDown
	}
	return valueUp
}
