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

import (
	"fmt"

	"github.com/chordpad/chordpad/userinput"
)

// record is an ordered, fixed capacity list of consumed key-down events. A
// role can only be armed once before it must be released, so one slot per
// role is always enough.
type record struct {
	events [NumRoles]userinput.EventKeyboard
	roles  [NumRoles]Role
	n      int

	// the roles present in the record
	held Mask
}

// add panics if the role is already present. the bit discipline of the
// tracker and the repeat check in the detector make this unreachable
func (rec *record) add(r Role, ev userinput.EventKeyboard) {
	if rec.held.Has(r) {
		panic(fmt.Sprintf("hotkeys: %v recorded twice", r))
	}
	if rec.n >= len(rec.events) {
		panic("hotkeys: record capacity exceeded")
	}
	rec.events[rec.n] = ev
	rec.roles[rec.n] = r
	rec.n++
	rec.held |= r.Bit()
}

// removeKey removes the entry for the key identity. returns false if the key
// is not in the record
func (rec *record) removeKey(key string) bool {
	for i := 0; i < rec.n; i++ {
		if rec.events[i].Key == key {
			rec.held &^= rec.roles[i].Bit()
			copy(rec.events[i:rec.n], rec.events[i+1:rec.n])
			copy(rec.roles[i:rec.n], rec.roles[i+1:rec.n])
			rec.n--
			rec.events[rec.n] = userinput.EventKeyboard{}
			return true
		}
	}
	return false
}

// removeRole removes the entry for the role. returns false if the role is not
// in the record
func (rec *record) removeRole(r Role) bool {
	if !rec.held.Has(r) {
		return false
	}
	for i := 0; i < rec.n; i++ {
		if rec.roles[i] == r {
			return rec.removeKey(rec.events[i].Key)
		}
	}
	return false
}

func (rec *record) containsKey(key string) bool {
	for i := 0; i < rec.n; i++ {
		if rec.events[i].Key == key {
			return true
		}
	}
	return false
}

func (rec *record) empty() bool {
	return rec.n == 0
}

func (rec *record) clear() {
	*rec = record{}
}

// keys returns the recorded key identities in the order they were added
func (rec *record) keys() []string {
	k := make([]string, rec.n)
	for i := 0; i < rec.n; i++ {
		k[i] = rec.events[i].Key
	}
	return k
}

// moveTo appends every entry to dst and clears the record. a role already
// present in dst is an invariant violation and will panic
func (rec *record) moveTo(dst *record) {
	for i := 0; i < rec.n; i++ {
		dst.add(rec.roles[i], rec.events[i])
	}
	rec.clear()
}
