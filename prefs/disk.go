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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in a preferences file.
const KeySep = " :: "

// Disk represents preference values as stored on disk. A Disk instance only
// knows about the keys added to it but saving the Disk preserves entries in
// the file that were added by other instances.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.sortedKeys()

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is the label given to the value in the prefs file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("prefs: empty key")
	}
	if strings.Contains(key, KeySep) {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values added to the Disk instance.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.sortedKeys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that belong to
// other Disk instances are preserved. Defunct entries are dropped.
func (dsk *Disk) Save() (rerr error) {
	data, err := readFile(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if !isDefunct(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("prefs: %w", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, data[k])
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. A missing prefs file is not an error.
//
// Values found in the top group of the command line stack (see
// PushCommandLineStack()) take priority over values in the file.
func (dsk *Disk) Load() error {
	data, err := readFile(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// readFile returns the key/value pairs in the prefs file. the file not
// existing results in an empty map and no error
func readFile(path string) (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line for the boiler plate warning
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a valid prefs file (%s)", path)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)
		if len(spt) != 2 {
			continue
		}
		data[strings.TrimSpace(spt[0])] = spt[1]
	}

	return data, scanner.Err()
}
