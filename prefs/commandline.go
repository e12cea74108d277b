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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// a group of preferences specified on the command line. values are consumed
// as they are used by a Disk.Load()
type cmdLineGroup map[string]string

// remaining returns the unused entries of the group in the command line
// format, sorted by key
func (g cmdLineGroup) remaining() string {
	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, key := range keys {
		s = append(s, fmt.Sprintf("%s::%s", key, g[key]))
	}
	return strings.Join(s, "; ")
}

var commandLineStack []cmdLineGroup

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a command line and adds it as a new group. The
// format of the string is a list of key/value pairs:
//
//	hotkeys.enabled::true; display.tripleBuffer::false
//
// Malformed entries are ignored.
func PushCommandLineStack(prefs string) {
	g := make(cmdLineGroup)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			g[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	commandLineStack = append(commandLineStack, g)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the unused preferences of the group.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}
	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return popped.remaining()
}

// GetCommandLinePref value from current group. The value is deleted when it is
// returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	g := commandLineStack[len(commandLineStack)-1]
	if v, ok := g[key]; ok {
		delete(g, key)
		return true, v
	}

	return false, nil
}
