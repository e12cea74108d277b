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

// Package replay drives the hotkeys detector from a text script rather than
// from an input device. Scripts are useful for testing combos on machines
// without the handheld's buttons and for reproducing reported problems.
//
// A script has one instruction per line:
//
//	# comments start with a hash
//	down L1
//	down X
//	repeat X
//	up X
//	up L1
//	eligible false
//	down Left Shift
//
// The down, up and repeat instructions take a key. The key can be a role name
// (L1, R1, SELECT, START, X, Y) or a key name as reported by the input source.
// A key name in double quotes is always taken as a key name, so `down "X"` is
// the X key on a keyboard and not the X role.
// The eligible instruction changes the answer given to the detector when it
// asks whether combos are available.
//
// The Scribe type writes scripts from live input.
package replay
