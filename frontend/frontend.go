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

package frontend

import (
	"fmt"
	"io"
	"strings"

	"github.com/chordpad/chordpad/logger"
	"github.com/chordpad/chordpad/notifications"
	"github.com/chordpad/chordpad/userinput"
)

// the key that closes the most recently opened widget
const closeKey = "Escape"

// widgets opened by function keys
var widgets = map[string]string{
	"F2":  "save-file",
	"F3":  "open-file",
	"F4":  "general-options",
	"F7":  "tape-open",
	"F9":  "machine-select",
	"F12": "joystick-config",
}

// Frontend receives the events that survive the hotkeys filter.
type Frontend struct {
	output io.Writer

	// open widgets. the last entry has focus
	stack []string

	quit        bool
	resets      int
	tapePlaying bool

	// called with a short message whenever a notification is received. the
	// SDL front end uses this to set the window title
	notice func(string)
}

// NewFrontend is the preferred method of initialisation for the Frontend
// type. Actions are described on the output writer, which may be nil.
func NewFrontend(output io.Writer) *Frontend {
	if output == nil {
		output = io.Discard
	}
	return &Frontend{output: output}
}

// SetNoticeHandler sets the function that receives notification messages.
func (fe *Frontend) SetNoticeHandler(f func(string)) {
	fe.notice = f
}

func (fe *Frontend) printf(format string, a ...any) {
	fmt.Fprintln(fe.output, fmt.Sprintf(format, a...))
}

// HandleEvent implements the userinput.HandleInput interface.
func (fe *Frontend) HandleEvent(ev userinput.Event) error {
	switch ev := ev.(type) {
	case userinput.EventQuit:
		fe.quit = true
		fe.printf("quit")

	case userinput.EventKeyboard:
		return fe.handleKeyboard(ev)

	default:
		return fmt.Errorf("frontend: unsupported event type (%T)", ev)
	}

	return nil
}

func (fe *Frontend) handleKeyboard(ev userinput.EventKeyboard) error {
	if !ev.Down {
		fe.printf("key %s", ev)
		return nil
	}

	if ev.Repeat {
		fe.printf("key %s", ev)
		return nil
	}

	if w, ok := widgets[ev.Key]; ok {
		fe.open(w)
		return nil
	}

	switch ev.Key {
	case closeKey:
		if len(fe.stack) > 0 {
			fe.close()
			return nil
		}

	case "F5":
		fe.resets++
		fe.printf("reset machine")
		return nil

	case "F8":
		fe.tapePlaying = !fe.tapePlaying
		if fe.tapePlaying {
			fe.printf("tape play")
		} else {
			fe.printf("tape stop")
		}
		return nil

	case "F10":
		fe.quit = true
		fe.printf("quit")
		return nil
	}

	fe.printf("key %s", ev)
	return nil
}

func (fe *Frontend) open(w string) {
	for _, s := range fe.stack {
		if s == w {
			logger.Logf(logger.Allow, "frontend", "%s already open", w)
			return
		}
	}
	fe.stack = append(fe.stack, w)
	fe.printf("open %s", w)
}

func (fe *Frontend) close() {
	w := fe.stack[len(fe.stack)-1]
	fe.stack = fe.stack[:len(fe.stack)-1]
	fe.printf("close %s", w)
}

// ComboEligible implements the hotkeys.Oracle interface.
func (fe *Frontend) ComboEligible() bool {
	return len(fe.stack) == 0
}

// Notify implements the notifications.Notify interface.
func (fe *Frontend) Notify(notice notifications.Notice, detail string) error {
	var msg string

	switch notice {
	case notifications.NotifyComboFired:
		msg = fmt.Sprintf("combo: %s", detail)
	case notifications.NotifySettingToggled:
		msg = fmt.Sprintf("setting: %s", detail)
	case notifications.NotifyComboReset:
		msg = "combo abandoned"
	default:
		return fmt.Errorf("frontend: unsupported notice (%s)", notice)
	}

	fe.printf("! %s", msg)
	if fe.notice != nil {
		fe.notice(msg)
	}

	return nil
}

// Quit returns true if the user has asked to quit.
func (fe *Frontend) Quit() bool {
	return fe.quit
}

// Resets returns the number of times the machine has been reset.
func (fe *Frontend) Resets() int {
	return fe.resets
}

// TapePlaying returns true if the tape is playing.
func (fe *Frontend) TapePlaying() bool {
	return fe.tapePlaying
}

// Widgets returns the names of the open widgets, oldest first.
func (fe *Frontend) Widgets() []string {
	return append([]string{}, fe.stack...)
}

func (fe *Frontend) String() string {
	if len(fe.stack) == 0 {
		return "no widgets open"
	}
	return strings.Join(fe.stack, " > ")
}
