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
	"strings"
)

// Role is one of the fixed positions a physical key can occupy in a chord.
type Role int

// List of valid Role values.
const (
	ModLeft Role = iota
	ModRight
	Select
	Start
	ActionX
	ActionY

	NumRoles
)

func (r Role) String() string {
	switch r {
	case ModLeft:
		return "L1"
	case ModRight:
		return "R1"
	case Select:
		return "SELECT"
	case Start:
		return "START"
	case ActionX:
		return "X"
	case ActionY:
		return "Y"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// RoleFromString is the inverse of Role.String(). Comparison is case
// insensitive.
func RoleFromString(s string) (Role, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for r := ModLeft; r < NumRoles; r++ {
		if r.String() == s {
			return r, true
		}
	}
	return NumRoles, false
}

// IsModifier returns true for the two shoulder roles.
func (r Role) IsModifier() bool {
	return r == ModLeft || r == ModRight
}

// Bit returns the role's bit in a Mask.
func (r Role) Bit() Mask {
	switch r {
	case ModLeft:
		return MaskModLeft
	case ModRight:
		return MaskModRight
	case Select:
		return MaskSelect
	case Start:
		return MaskStart
	case ActionX:
		return MaskActionX
	case ActionY:
		return MaskActionY
	}
	panic(fmt.Sprintf("hotkeys: no mask bit for %v", r))
}

// Mask is the set of roles currently armed.
type Mask uint8

// List of Mask bits. The values are part of the combo table and must not
// change.
const (
	MaskActionX  Mask = 0x01
	MaskActionY  Mask = 0x02
	MaskModRight Mask = 0x10
	MaskModLeft  Mask = 0x20
	MaskStart    Mask = 0x40
	MaskSelect   Mask = 0x80

	maskModifiers = MaskModLeft | MaskModRight
)

// Has returns true if the role's bit is set.
func (m Mask) Has(r Role) bool {
	return m&r.Bit() == r.Bit()
}

// HasModifier returns true if either modifier bit is set.
func (m Mask) HasModifier() bool {
	return m&maskModifiers != 0
}

func (m Mask) String() string {
	if m == 0 {
		return "none"
	}
	s := make([]string, 0, NumRoles)
	for r := ModLeft; r < NumRoles; r++ {
		if m.Has(r) {
			s = append(s, r.String())
		}
	}
	return fmt.Sprintf("0x%02x (%s)", uint8(m), strings.Join(s, "+"))
}

// Keys maps each Role to a physical key identity.
type Keys [NumRoles]string

// DefaultKeys is the mapping for GCW Zero style handhelds, where the buttons
// arrive as ordinary keyboard events. Names are SDL scancode names.
var DefaultKeys = Keys{
	ModLeft:  "Tab",
	ModRight: "Backspace",
	Select:   "Escape",
	Start:    "Return",
	ActionX:  "Space",
	ActionY:  "Left Shift",
}

// Role returns the role the key identity occupies, if any.
func (k *Keys) Role(key string) (Role, bool) {
	for r, v := range k {
		if v == key {
			return Role(r), true
		}
	}
	return NumRoles, false
}
