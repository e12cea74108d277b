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

package userinput

import "fmt"

// Event represents all the different type of events that can occur in the
// user interface.
type Event interface{}

// EventQuit is sent when the input source has been closed.
type EventQuit struct{}

// KeyMod identifies the modifier keys held during a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

func (m KeyMod) String() string {
	switch m {
	case KeyModShift:
		return "shift"
	case KeyModCtrl:
		return "ctrl"
	case KeyModAlt:
		return "alt"
	}
	return ""
}

// EventKeyboard is sent for every key press and release.
//
// Key is an opaque key identity. Two events refer to the same physical key if
// and only if their Key fields are equal.
type EventKeyboard struct {
	Key  string
	Down bool

	// Repeat is set by sources that are able to distinguish auto-repeat. it
	// is information only and should not be relied upon because not all
	// sources can set it
	Repeat bool

	Mod KeyMod
}

func (ev EventKeyboard) String() string {
	s := "up"
	if ev.Down {
		s = "down"
		if ev.Repeat {
			s = "repeat"
		}
	}
	if ev.Mod != KeyModNone {
		return fmt.Sprintf("%s %s (%s)", s, ev.Key, ev.Mod)
	}
	return fmt.Sprintf("%s %s", s, ev.Key)
}
