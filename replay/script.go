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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chordpad/chordpad/hotkeys"
	"github.com/chordpad/chordpad/userinput"
)

const commentLine = "#"

// Instruction is the type of a script line.
type Instruction int

// List of valid Instruction values.
const (
	Key Instruction = iota
	Eligible
)

// Step is a single instruction from a script.
type Step struct {
	// line number in the script, counting from one
	Line int

	Instruction Instruction

	// valid for the Key instruction
	Event userinput.EventKeyboard

	// valid for the Eligible instruction
	Eligible bool
}

func (s Step) String() string {
	if s.Instruction == Eligible {
		return fmt.Sprintf("eligible %v", s.Eligible)
	}
	return s.Event.String()
}

// Script is a parsed replay script.
type Script struct {
	Filename string
	Steps    []Step
}

// Load a script from file. Role names are resolved with the keys argument.
func Load(filename string, keys *hotkeys.Keys) (*Script, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()

	scr, err := Parse(f, keys)
	if err != nil {
		return nil, err
	}
	scr.Filename = filename

	return scr, nil
}

// Parse a script from the reader.
func Parse(r io.Reader, keys *hotkeys.Keys) (*Script, error) {
	scr := &Script{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, commentLine) {
			continue
		}

		step, err := parseLine(s, keys)
		if err != nil {
			return nil, fmt.Errorf("replay: line %d: %w", line, err)
		}
		step.Line = line

		scr.Steps = append(scr.Steps, step)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	return scr, nil
}

func parseLine(s string, keys *hotkeys.Keys) (Step, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return Step{}, fmt.Errorf("incomplete instruction: %s", s)
	}

	arg := strings.Join(fields[1:], " ")

	var step Step

	switch strings.ToLower(fields[0]) {
	case "down", "up", "repeat":
		key, err := resolveKey(arg, keys)
		if err != nil {
			return Step{}, err
		}
		step.Event = userinput.EventKeyboard{Key: key}
		switch strings.ToLower(fields[0]) {
		case "down":
			step.Event.Down = true
		case "repeat":
			step.Event.Down = true
			step.Event.Repeat = true
		}
	case "eligible":
		v, err := strconv.ParseBool(arg)
		if err != nil {
			return Step{}, fmt.Errorf("eligible requires true or false: %s", arg)
		}
		step.Instruction = Eligible
		step.Eligible = v
	default:
		return Step{}, fmt.Errorf("unknown instruction: %s", fields[0])
	}

	return step, nil
}

// role names are converted to the key for that role. a quoted key is never
// treated as a role name. anything else is used as it is
func resolveKey(s string, keys *hotkeys.Keys) (string, error) {
	if strings.HasPrefix(s, `"`) {
		k, err := strconv.Unquote(s)
		if err != nil {
			return "", fmt.Errorf("badly quoted key: %s", s)
		}
		return k, nil
	}
	if r, ok := hotkeys.RoleFromString(s); ok {
		return keys[r], nil
	}
	return s, nil
}

// quoteKey is the inverse of resolveKey for raw key names
func quoteKey(key string) string {
	return strconv.Quote(key)
}
