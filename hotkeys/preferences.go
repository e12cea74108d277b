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

	"github.com/chordpad/chordpad/prefs"
)

// Preferences for the hotkeys package, including the settings that combos can
// toggle and the joystick bindings that take precedence over combos.
type Preferences struct {
	dsk *prefs.Disk

	// master switch for combo capture
	Enabled prefs.Bool

	// discard armed roles when combos become unavailable part way through a
	// chord. the keys that were consumed are still suppressed on release
	ResetOnIneligible prefs.Bool

	// log fired and abandoned combos
	Log prefs.Bool

	// toggled by the ModLeft+ModRight combo
	TripleBuffer prefs.Bool

	// joystick 1 emulation. fire buttons 5 and 6 are the shoulder keys
	Joystick1Output prefs.Bool
	Joystick1Fire5  prefs.Bool
	Joystick1Fire6  prefs.Bool

	// the handheld's native joystick mapping
	GCW0Output prefs.Bool
	GCW0L1     prefs.Bool
	GCW0R1     prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The path argument is the prefs file, usually the result of
// resources.JoinPath(prefs.DefaultPrefsFile).
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("hotkeys: %w", err)
	}

	for key, v := range map[string]*prefs.Bool{
		"hotkeys.enabled":           &p.Enabled,
		"hotkeys.resetOnIneligible": &p.ResetOnIneligible,
		"hotkeys.log":               &p.Log,
		string(SettingTripleBuffer): &p.TripleBuffer,
		"joystick.1.output":         &p.Joystick1Output,
		"joystick.1.fire5":          &p.Joystick1Fire5,
		"joystick.1.fire6":          &p.Joystick1Fire6,
		"joystick.gcw0.output":      &p.GCW0Output,
		"joystick.gcw0.l1":          &p.GCW0L1,
		"joystick.gcw0.r1":          &p.GCW0R1,
	} {
		if err := p.dsk.Add(key, v); err != nil {
			return nil, fmt.Errorf("hotkeys: %w", err)
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, fmt.Errorf("hotkeys: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Enabled.Set(true)
	p.ResetOnIneligible.Set(false)
	p.Log.Set(true)
	p.TripleBuffer.Set(false)
	p.Joystick1Output.Set(false)
	p.Joystick1Fire5.Set(false)
	p.Joystick1Fire6.Set(false)
	p.GCW0Output.Set(false)
	p.GCW0L1.Set(false)
	p.GCW0R1.Set(false)
}

// Load hotkeys preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hotkeys preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// setting returns the boolean setting with the id. returns nil if there is no
// such setting
func (p *Preferences) setting(id SettingID) *prefs.Bool {
	switch id {
	case SettingTripleBuffer:
		return &p.TripleBuffer
	}
	return nil
}

// joystickBound returns true if the role's key is claimed by an active
// joystick mapping
func (p *Preferences) joystickBound(r Role) bool {
	b := func(v *prefs.Bool) bool {
		return v.Get().(bool)
	}

	switch r {
	case ModLeft:
		return (b(&p.Joystick1Output) && b(&p.Joystick1Fire5)) ||
			(b(&p.GCW0Output) && b(&p.GCW0L1))
	case ModRight:
		return (b(&p.Joystick1Output) && b(&p.Joystick1Fire6)) ||
			(b(&p.GCW0Output) && b(&p.GCW0R1))
	}
	return false
}
