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

// Oracle says whether combo capture is permitted in the current context. For
// example, combos are not permitted while a menu or the on-screen keyboard is
// open.
//
// The oracle is consulted once for every event.
type Oracle interface {
	ComboEligible() bool
}

// OracleFunc allows an ordinary function to be used as an Oracle.
type OracleFunc func() bool

// ComboEligible implements the Oracle interface.
func (f OracleFunc) ComboEligible() bool {
	return f()
}

// AlwaysEligible is an Oracle that always permits combos.
var AlwaysEligible Oracle = OracleFunc(func() bool { return true })

// gate decides whether an event may take part in combo capture. it has no
// memory of previous decisions
type gate struct {
	oracle Oracle
	keys   *Keys
	prefs  *Preferences
}

// contextEligible is the global part of the decision
func (g *gate) contextEligible() bool {
	if !g.prefs.Enabled.Get().(bool) {
		return false
	}
	return g.oracle.ComboEligible()
}

// excluded is the per key part of the decision. a role key bound to a
// joystick function is never captured
func (g *gate) excluded(ev userinput.EventKeyboard) bool {
	r, ok := g.keys.Role(ev.Key)
	if !ok {
		return false
	}
	return g.prefs.joystickBound(r)
}
