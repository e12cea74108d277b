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
	"sort"
)

// ActionKind distinguishes the two types of Action.
type ActionKind int

// List of valid ActionKind values.
const (
	// inject one virtual key-down event into the dispatch path
	SynthesizeKey ActionKind = iota

	// flip a boolean setting immediately. no event is injected
	ToggleSetting
)

// SettingID names a boolean setting that can be flipped by a combo.
type SettingID string

// List of settings that can be toggled.
const (
	SettingTripleBuffer SettingID = "display.tripleBuffer"
)

// Action is performed when a combo fires.
type Action struct {
	Kind ActionKind

	// short description of the action. eg. "open-file"
	Name string

	// the virtual key to synthesize. only valid for SynthesizeKey
	Key string

	// the setting to toggle. only valid for ToggleSetting
	Setting SettingID
}

func (a Action) String() string {
	switch a.Kind {
	case SynthesizeKey:
		return a.Name + " [" + a.Key + "]"
	case ToggleSetting:
		return a.Name + " [toggle " + string(a.Setting) + "]"
	}
	return a.Name
}

func synthesize(name string, key string) Action {
	return Action{Kind: SynthesizeKey, Name: name, Key: key}
}

// the virtual keys are the function keys the handheld does not have
var comboTable = map[Mask]Action{
	MaskModLeft | MaskModRight:              {Kind: ToggleSetting, Name: "triple-buffering", Setting: SettingTripleBuffer},
	MaskModLeft | MaskActionX:               synthesize("open-file", "F3"),
	MaskModLeft | MaskActionY:               synthesize("save-file", "F2"),
	MaskModRight | MaskActionX:              synthesize("exit", "F10"),
	MaskModRight | MaskActionY:              synthesize("reset-machine", "F5"),
	MaskModLeft | MaskStart | MaskActionX:   synthesize("tape-open", "F7"),
	MaskModLeft | MaskStart | MaskActionY:   synthesize("tape-play", "F8"),
	MaskModLeft | MaskSelect | MaskActionX:  synthesize("general-options", "F4"),
	MaskModLeft | MaskSelect | MaskActionY:  synthesize("machine-select", "F9"),
	MaskModRight | MaskSelect | MaskActionX: synthesize("joystick-config", "F12"),
}

// Lookup returns the Action for a complete combo. Masks that are partial or
// not recognised return false.
func Lookup(m Mask) (Action, bool) {
	a, ok := comboTable[m]
	return a, ok
}

// Combo pairs a Mask with the Action it performs.
type Combo struct {
	Mask   Mask
	Action Action
}

// Combos returns the combo table in ascending Mask order.
func Combos() []Combo {
	c := make([]Combo, 0, len(comboTable))
	for m, a := range comboTable {
		c = append(c, Combo{Mask: m, Action: a})
	}
	sort.Slice(c, func(i, j int) bool {
		return c[i].Mask < c[j].Mask
	})
	return c
}
