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

import (
	"fmt"
	"io"
)

// Recorder is an implementation of HandleInput that keeps a list of every
// event it receives. Useful for testing and for the replay mode.
type Recorder struct {
	Events []Event

	// if Echo is not nil then keyboard events are written to it as they
	// arrive
	Echo io.Writer
}

// HandleEvent implements the HandleInput interface.
func (r *Recorder) HandleEvent(ev Event) error {
	r.Events = append(r.Events, ev)
	if r.Echo != nil {
		if kb, ok := ev.(EventKeyboard); ok {
			_, err := fmt.Fprintf(r.Echo, "%s\n", kb)
			return err
		}
	}
	return nil
}

// Keyboard returns only the keyboard events received by the Recorder.
func (r *Recorder) Keyboard() []EventKeyboard {
	kb := make([]EventKeyboard, 0, len(r.Events))
	for _, ev := range r.Events {
		if e, ok := ev.(EventKeyboard); ok {
			kb = append(kb, e)
		}
	}
	return kb
}

// Clear forgets all recorded events.
func (r *Recorder) Clear() {
	r.Events = r.Events[:0]
}
