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

package replay

import (
	"bufio"
	"fmt"
	"os"

	"github.com/chordpad/chordpad/userinput"
)

// Scribe writes raw keyboard events to a script file.
type Scribe struct {
	file *os.File
	w    *bufio.Writer
}

// IsActive returns true if a script is currently being written.
func (scr *Scribe) IsActive() bool {
	return scr.file != nil
}

// StartSession creates a new script file. It is an error for the file to
// already exist.
func (scr *Scribe) StartSession(filename string) error {
	if scr.IsActive() {
		return fmt.Errorf("replay: scribe already active")
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	scr.file = f
	scr.w = bufio.NewWriter(f)
	fmt.Fprintf(scr.w, "%s recorded input\n", commentLine)

	return nil
}

// Record the event. Events other than keyboard events are ignored.
func (scr *Scribe) Record(ev userinput.Event) error {
	if !scr.IsActive() {
		return nil
	}

	kb, ok := ev.(userinput.EventKeyboard)
	if !ok {
		return nil
	}

	// modifier metadata is not recorded. keys are quoted so that a key that
	// shares a name with a role is read back as the same key
	instruction := "up"
	if kb.Repeat {
		instruction = "repeat"
	} else if kb.Down {
		instruction = "down"
	}
	if _, err := fmt.Fprintf(scr.w, "%s %s\n", instruction, quoteKey(kb.Key)); err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	return nil
}

// EndSession flushes and closes the script file.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.w = nil
	}()

	err := scr.w.Flush()

	// close the file even if the flush failed. return the flush error in
	// preference to the close error
	if errClose := scr.file.Close(); errClose != nil && err == nil {
		err = errClose
	}
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	return nil
}
