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

package sdlinput

import (
	"github.com/chordpad/chordpad/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// translateMod reduces the SDL modifier state to a single userinput.KeyMod.
// alt takes priority over shift, which takes priority over ctrl
func translateMod(state sdl.Keymod) userinput.KeyMod {
	switch {
	case state&sdl.KMOD_LALT == sdl.KMOD_LALT || state&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return userinput.KeyModAlt
	case state&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || state&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return userinput.KeyModShift
	case state&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || state&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// keyboardEvent converts an SDL keyboard event. keys are identified by
// scancode name so that the identity does not depend on the keyboard layout
func keyboardEvent(ev *sdl.KeyboardEvent) (userinput.EventKeyboard, bool) {
	switch ev.Type {
	case sdl.KEYDOWN, sdl.KEYUP:
	default:
		return userinput.EventKeyboard{}, false
	}

	name := sdl.GetScancodeName(ev.Keysym.Scancode)
	if name == "" {
		return userinput.EventKeyboard{}, false
	}

	return userinput.EventKeyboard{
		Key:    name,
		Down:   ev.Type == sdl.KEYDOWN,
		Repeat: ev.Type == sdl.KEYDOWN && ev.Repeat != 0,
		Mod:    translateMod(sdl.Keymod(ev.Keysym.Mod)),
	}, true
}
