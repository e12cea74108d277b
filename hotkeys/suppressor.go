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

package hotkeys

import "github.com/chordpad/chordpad/userinput"

// suppressor swallows the key-up events of keys that took part in a chord
// that has fired
type suppressor struct {
	pending record

	// a completed chord is waiting for its keys to be released
	completed bool
}

// filterRelease returns true if the event should be dropped
func (s *suppressor) filterRelease(ev userinput.EventKeyboard) bool {
	if !s.completed || ev.Down {
		return false
	}
	if !s.pending.removeKey(ev.Key) {
		return false
	}
	if s.pending.empty() {
		s.completed = false
	}
	return true
}

// holding returns true if the key took part in a fired chord and has not yet
// been released. a key-down for such a key can only be auto-repeat
func (s *suppressor) holding(key string) bool {
	return s.completed && s.pending.containsKey(key)
}

// arm moves the recorded events into the pending set
func (s *suppressor) arm(rec *record) {
	rec.moveTo(&s.pending)
	s.completed = !s.pending.empty()
}
