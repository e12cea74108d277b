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

// Package frontend is the dispatcher at the end of the input pipeline. It
// stands in for the emulator's user interface: the function keys open and
// close the interface's widgets, quit the program, reset the machine and
// start the tape.
//
// The Frontend type also answers the hotkeys.Oracle question. Combos are
// only available when no widget is open, because the widgets use the role
// keys for their own navigation.
package frontend
