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

// observation is the result of the tracker seeing an event
type observation int

const (
	// the event is not part of a chord
	observePass observation = iota

	// the event is consumed but the mask has not changed
	observeConsume

	// the event is consumed and the mask has changed. the resolver should
	// look at the new mask
	observeResolve
)

// tracker maintains the mask of armed roles. the record holds a copy of the
// key-down event for every armed role and nothing else
type tracker struct {
	mask     Mask
	recorded record
}

func (t *tracker) observe(r Role, ev userinput.EventKeyboard) observation {
	switch {
	case ev.Down && r.IsModifier():
		if t.mask.Has(r) {
			return observeConsume
		}
		t.arm(r, ev)
		return observeResolve

	case ev.Down:
		// targets keep their ordinary meaning unless a modifier has already
		// claimed the gesture
		if !t.mask.HasModifier() {
			return observePass
		}
		if t.mask.Has(r) {
			return observeConsume
		}
		// the press was passed through before the modifier went down. the
		// key stays with the dispatcher until it is released
		if ev.Repeat {
			return observePass
		}
		t.arm(r, ev)
		return observeResolve

	case r.IsModifier():
		// modifier releases are never passed through, even if the modifier
		// was not armed
		t.disarm(r)
		return observeResolve

	default:
		// a target release is only consumed if the press was consumed
		if !t.mask.Has(r) {
			return observePass
		}
		t.disarm(r)
		return observeResolve
	}
}

func (t *tracker) arm(r Role, ev userinput.EventKeyboard) {
	t.mask |= r.Bit()
	t.recorded.add(r, ev)
}

func (t *tracker) disarm(r Role) {
	t.mask &^= r.Bit()
	t.recorded.removeRole(r)
}

func (t *tracker) reset() {
	t.mask = 0
	t.recorded.clear()
}
