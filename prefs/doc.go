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

// Package prefs facilitates the storage of preference values on disk. Values
// are typed (Bool and String) and are registered with a Disk instance under a
// key:
//
//	var enabled prefs.Bool
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("hotkeys.enabled", &enabled)
//	_ = dsk.Load()
//
// Preference values can also be given on the command line as a string of
// key/value pairs (see PushCommandLineStack()). Such values take priority over
// values loaded from the file.
package prefs
