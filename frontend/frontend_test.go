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

package frontend_test

import (
	"path/filepath"
	"testing"

	"github.com/chordpad/chordpad/frontend"
	"github.com/chordpad/chordpad/hotkeys"
	"github.com/chordpad/chordpad/notifications"
	"github.com/chordpad/chordpad/test"
	"github.com/chordpad/chordpad/userinput"
)

func down(key string) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key, Down: true}
}

func up(key string) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key}
}

func TestWidgets(t *testing.T) {
	w := &test.CompareWriter{}
	fe := frontend.NewFrontend(w)
	test.ExpectSuccess(t, fe.ComboEligible())

	test.ExpectSuccess(t, fe.HandleEvent(down("F4")))
	test.ExpectSuccess(t, fe.HandleEvent(down("F12")))
	test.ExpectFailure(t, fe.ComboEligible())
	test.ExpectEquality(t, fe.String(), "general-options > joystick-config")

	// opening a widget that is already open does nothing
	test.ExpectSuccess(t, fe.HandleEvent(down("F4")))
	test.ExpectEquality(t, len(fe.Widgets()), 2)

	test.ExpectSuccess(t, fe.HandleEvent(down("Escape")))
	test.ExpectSuccess(t, fe.HandleEvent(up("Escape")))
	test.ExpectSuccess(t, fe.HandleEvent(down("Escape")))
	test.ExpectSuccess(t, fe.ComboEligible())

	// with no widgets open escape is an ordinary key
	test.ExpectSuccess(t, fe.HandleEvent(down("Escape")))

	test.ExpectEquality(t, w.String(), "open general-options\n"+
		"open joystick-config\n"+
		"close joystick-config\n"+
		"key up Escape\n"+
		"close general-options\n"+
		"key down Escape\n")
}

func TestMachineKeys(t *testing.T) {
	fe := frontend.NewFrontend(nil)

	test.ExpectSuccess(t, fe.HandleEvent(down("F5")))
	test.ExpectSuccess(t, fe.HandleEvent(down("F5")))
	test.ExpectEquality(t, fe.Resets(), 2)

	test.ExpectSuccess(t, fe.HandleEvent(down("F8")))
	test.ExpectSuccess(t, fe.TapePlaying())
	test.ExpectSuccess(t, fe.HandleEvent(down("F8")))
	test.ExpectFailure(t, fe.TapePlaying())

	// repeats do not trigger actions
	test.ExpectSuccess(t, fe.HandleEvent(userinput.EventKeyboard{Key: "F10", Down: true, Repeat: true}))
	test.ExpectFailure(t, fe.Quit())

	test.ExpectSuccess(t, fe.HandleEvent(down("F10")))
	test.ExpectSuccess(t, fe.Quit())

	fe = frontend.NewFrontend(nil)
	test.ExpectSuccess(t, fe.HandleEvent(userinput.EventQuit{}))
	test.ExpectSuccess(t, fe.Quit())
}

func TestNotify(t *testing.T) {
	w := &test.CompareWriter{}
	fe := frontend.NewFrontend(w)

	var title string
	fe.SetNoticeHandler(func(s string) {
		title = s
	})

	test.ExpectSuccess(t, fe.Notify(notifications.NotifyComboFired, "exit [F10]"))
	test.ExpectEquality(t, title, "combo: exit [F10]")
	test.ExpectSuccess(t, fe.Notify(notifications.NotifyComboReset, ""))
	test.ExpectEquality(t, title, "combo abandoned")
	test.ExpectFailure(t, fe.Notify(notifications.Notice("NotifyUnknown"), ""))

	test.ExpectEquality(t, w.String(), "! combo: exit [F10]\n! combo abandoned\n")
}

func TestDetectorPipeline(t *testing.T) {
	p, err := hotkeys.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	fe := frontend.NewFrontend(w)
	d := hotkeys.NewDetector(p, fe)
	d.SetNotify(fe)

	for _, ev := range []userinput.EventKeyboard{
		// L1+X opens a widget
		down("Tab"), down("Space"), up("Space"), up("Tab"),

		// the widget has focus so role keys are ordinary keys
		down("Backspace"), up("Backspace"), down("Escape"), up("Escape"),

		// R1+X quits
		down("Backspace"), down("Space"),
	} {
		test.ExpectSuccess(t, d.HandleUserInput(ev, fe))
	}

	test.ExpectSuccess(t, fe.Quit())

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 8)
	test.ExpectEquality(t, lines[0], "! combo: open-file [F3]")
	test.ExpectEquality(t, lines[1], "open open-file")
	test.ExpectEquality(t, lines[2], "key down Backspace")
	test.ExpectEquality(t, lines[3], "key up Backspace")
	test.ExpectEquality(t, lines[4], "close open-file")
	test.ExpectEquality(t, lines[5], "key up Escape")
	test.ExpectEquality(t, lines[6], "! combo: exit [F10]")
	test.ExpectEquality(t, lines[7], "quit")
}
