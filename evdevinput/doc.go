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

// Package evdevinput reads key events from a Linux input device. This is how
// the buttons of a handheld reach the hotkeys detector when there is no SDL
// window to receive them.
//
// The device is grabbed so that events do not also reach the console. Events
// that survive the detector, including synthesized function keys, can be
// written to a uinput clone of the device so that other programs see them.
//
// Key codes are converted to the same key names that SDL uses for scancodes,
// so preferences and scripts work with either input source.
package evdevinput
